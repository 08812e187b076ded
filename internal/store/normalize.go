package store

import "github.com/dmitrijs2005/moodkeeper/internal/journal"

// Normalize upgrades a raw record to the current schema in place and reports
// whether anything changed. It is the single migration step for records
// written by older versions (no boardTitles, no locks, no adminPass) and for
// partially-initialized records.
//
// Rules:
//   - missing maps (boards, boardTitles, locks) and the emotions slice are
//     materialized empty;
//   - each of the four default board keys is backfilled into boards and into
//     boardTitles independently, each only when absent from that map; deleted
//     default boards therefore come back empty on the next pass, while
//     user-created boards never do;
//   - a boards key without a title gets the key itself as its title (legacy
//     records used board keys as display titles), and a titled key without a
//     post sequence gets an empty one, so boards and boardTitles always cover
//     the same keys;
//   - a lock on a board that no longer exists is dropped;
//   - an empty adminPass is reset to the factory default.
//
// Normalize is idempotent: a second pass over its own output changes nothing.
func Normalize(r *journal.Record) bool {
	changed := false

	if r.Emotions == nil {
		r.Emotions = []journal.EmotionEntry{}
		changed = true
	}
	if r.Boards == nil {
		r.Boards = map[string][]journal.Post{}
		changed = true
	}
	if r.BoardTitles == nil {
		r.BoardTitles = map[string]string{}
		changed = true
	}
	if r.Locks == nil {
		r.Locks = map[string]string{}
		changed = true
	}

	for _, k := range journal.DefaultBoardKeys {
		if _, ok := r.Boards[k]; !ok {
			r.Boards[k] = []journal.Post{}
			changed = true
		}
		if _, ok := r.BoardTitles[k]; !ok {
			r.BoardTitles[k] = journal.DefaultBoards[k]
			changed = true
		}
	}

	for k := range r.Boards {
		if _, ok := r.BoardTitles[k]; !ok {
			r.BoardTitles[k] = k
			changed = true
		}
	}
	for k := range r.BoardTitles {
		if _, ok := r.Boards[k]; !ok {
			r.Boards[k] = []journal.Post{}
			changed = true
		}
	}

	for k := range r.Locks {
		if _, ok := r.BoardTitles[k]; !ok {
			delete(r.Locks, k)
			changed = true
		}
	}

	if r.AdminPass == "" {
		r.AdminPass = journal.DefaultAdminPass
		changed = true
	}

	return changed
}
