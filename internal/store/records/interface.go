// Package records implements the flat key-value repository holding one raw
// JSON record per username. There is no index of all usernames; lookups are
// by key equality only.
package records

import "context"

// Repository describes raw record access for the store layer. Values are the
// marshalled JSON of a journal.Record; the repository does not interpret them.
type Repository interface {
	// Get returns the raw record for username, or common.ErrNotFound if the
	// username has never been seen.
	Get(ctx context.Context, username string) ([]byte, error)

	// Set inserts or replaces the raw record for username.
	Set(ctx context.Context, username string, data []byte) error

	// Clear removes every record for every username.
	Clear(ctx context.Context) error
}
