package session

import (
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Current())
	assert.Empty(t, m.Username())

	s := m.Start("alice")
	require.NotNil(t, s)
	assert.Equal(t, "alice", m.Username())
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.StartedAt.IsZero())

	s.Board = "happy"
	s.Mood = journal.MoodLowPositive

	// a new login replaces the session wholesale
	s2 := m.Start("bob")
	assert.Equal(t, "bob", m.Username())
	assert.Empty(t, s2.Board)
	assert.Empty(t, s2.Mood)
	assert.NotEqual(t, s.ID, s2.ID)

	m.Clear()
	assert.Nil(t, m.Current())
	assert.Empty(t, m.Username())
}
