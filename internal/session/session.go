// Package session holds the transient, non-persisted state of a single run:
// the active username, the open board and the mood quadrant picked mid-survey.
// It replaces ad hoc globals with one explicit object owned by the view layer.
package session

import (
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
	"github.com/google/uuid"
)

// Session is the state of one logged-in user within one process. It is never
// persisted; a full data wipe or logout discards it.
type Session struct {
	ID        string
	Username  string
	Board     string       // key of the open board, "" when none
	Mood      journal.Mood // quadrant picked mid-survey, "" when none
	StartedAt time.Time
}

// Manager owns the current session. Lifecycle: Start on successful login,
// Clear on logout or wipe. At most one session is active at a time.
type Manager struct {
	current *Session
}

func NewManager() *Manager {
	return &Manager{}
}

// Start replaces any existing session with a fresh one for username.
func (m *Manager) Start(username string) *Session {
	m.current = &Session{
		ID:        uuid.NewString(),
		Username:  username,
		StartedAt: time.Now(),
	}
	return m.current
}

// Current returns the active session, or nil when nobody is logged in.
func (m *Manager) Current() *Session {
	return m.current
}

// Username returns the active username, or "" when nobody is logged in.
// Store operations treat "" as "no session".
func (m *Manager) Username() string {
	if m.current == nil {
		return ""
	}
	return m.current.Username
}

// Clear drops the session, if any.
func (m *Manager) Clear() {
	m.current = nil
}
