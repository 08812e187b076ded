package journal

import "sort"

// EmotionEntry is a single logged emotion. Entries are append-only;
// insertion order is chronological order.
type EmotionEntry struct {
	Emotion string `json:"emotion"`
	Mood    Mood   `json:"mood"`
	Date    string `json:"date"` // ISO-8601 (RFC 3339)
}

// Post is a free-text entry on a board. Time is a locale-formatted display
// string, not a machine timestamp; that matches the stored layout.
type Post struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// Record is the per-user persisted unit. It is stored as a single JSON value
// keyed by username in the local store.
//
// Passwords (login, admin, board locks) are stored and compared as plain
// values. This is a documented limitation of the stored format, not an
// oversight; recovery deliberately reveals the literal stored admin password.
type Record struct {
	Password    string            `json:"password"`
	AdminPass   string            `json:"adminPass"`
	Emotions    []EmotionEntry    `json:"emotions"`
	Boards      map[string][]Post `json:"boards"`
	BoardTitles map[string]string `json:"boardTitles"`
	Locks       map[string]string `json:"locks"`
}

// NewRecord returns a fresh record for a first-time login: default boards and
// titles seeded, no emotions, no locks, factory admin password.
func NewRecord(password string) *Record {
	r := &Record{
		Password:    password,
		AdminPass:   DefaultAdminPass,
		Emotions:    []EmotionEntry{},
		Boards:      make(map[string][]Post, len(DefaultBoardKeys)),
		BoardTitles: make(map[string]string, len(DefaultBoardKeys)),
		Locks:       map[string]string{},
	}
	for _, k := range DefaultBoardKeys {
		r.Boards[k] = []Post{}
		r.BoardTitles[k] = DefaultBoards[k]
	}
	return r
}

// Locked reports whether the given board key currently has a lock set.
func (r *Record) Locked(key string) bool {
	_, ok := r.Locks[key]
	return ok
}

// BoardKeys returns the keys of BoardTitles in stable order: the default keys
// first (in creation order), then user-created keys sorted lexicographically.
func (r *Record) BoardKeys() []string {
	keys := make([]string, 0, len(r.BoardTitles))
	for _, k := range DefaultBoardKeys {
		if _, ok := r.BoardTitles[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := make([]string, 0, len(r.BoardTitles))
	for k := range r.BoardTitles {
		if _, ok := DefaultBoards[k]; !ok {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}
