package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns the raw record for username.
func (r *SQLiteRepository) Get(ctx context.Context, username string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM records WHERE username = ?`, username)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select record: %w", err)
	}
	return data, nil
}

// Set upserts the raw record for username.
func (r *SQLiteRepository) Set(ctx context.Context, username string, data []byte) error {
	query := `INSERT INTO records (username, data) VALUES (?, ?)
			ON CONFLICT(username) DO UPDATE SET data = excluded.data`
	if _, err := r.db.ExecContext(ctx, query, username, data); err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// Clear removes all records for all usernames.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}
