package records

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE records (
  username TEXT PRIMARY KEY,
  data     TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSet_InsertAndReplace(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "alice", []byte(`{"v":1}`)))

	got, err := r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), got)

	// replace under the same key
	require.NoError(t, r.Set(ctx, "alice", []byte(`{"v":2}`)))

	got, err = r.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), got)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSet_KeysAreIndependent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "alice", []byte(`a`)))
	require.NoError(t, r.Set(ctx, "bob", []byte(`b`)))

	got, err := r.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []byte(`b`), got)
}

func TestClear_RemovesAllUsers(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "alice", []byte(`a`)))
	require.NoError(t, r.Set(ctx, "bob", []byte(`b`)))

	require.NoError(t, r.Clear(ctx))

	_, err := r.Get(ctx, "alice")
	assert.ErrorIs(t, err, common.ErrNotFound)
	_, err = r.Get(ctx, "bob")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
