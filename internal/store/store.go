// Package store implements the record store: the normalize-read / mutate /
// write protocol over the per-username records in the local database.
//
// Every operation that touches a record runs a full cycle inside one
// transaction: load the raw record, apply Normalize, perform the mutation,
// persist. A rejected operation rolls the transaction back, so prior state is
// always left intact on failure.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/dbx"
	"github.com/dmitrijs2005/moodkeeper/internal/journal"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/store/records"
)

// postTimeLayout mimics the locale-formatted display timestamp that the
// stored layout uses for posts (not a machine timestamp).
const postTimeLayout = "1/2/2006, 3:04:05 PM"

// Store owns all reads and mutations of user records.
type Store struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time
}

// New returns a Store over the given database.
func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log, now: time.Now}
}

// update runs fn against the normalized record for username inside a single
// transaction and persists the result. fn may be nil for a pure
// read-normalize-write pass. The persisted record is returned.
func (s *Store) update(ctx context.Context, username string, fn func(r *journal.Record) error) (*journal.Record, error) {
	if username == "" {
		return nil, common.ErrNotLoggedIn
	}

	var rec *journal.Record
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)

		data, err := repo.Get(ctx, username)
		if err != nil {
			return err
		}

		r := &journal.Record{}
		if err := json.Unmarshal(data, r); err != nil {
			return fmt.Errorf("failed to decode record for %q: %w", username, err)
		}

		Normalize(r)

		if fn != nil {
			if err := fn(r); err != nil {
				return err
			}
		}

		out, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode record for %q: %w", username, err)
		}
		if err := repo.Set(ctx, username, out); err != nil {
			return err
		}

		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Authenticate validates the username/password pair. For a never-seen
// username it creates and persists a fresh record (default boards, factory
// admin password). For an existing record a mismatched password fails with
// common.ErrAuth; there is no lockout and no retry limit. On success the
// normalized record is returned.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*journal.Record, error) {
	if username == "" || password == "" {
		return nil, common.ErrValidation
	}

	var rec *journal.Record
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)

		data, err := repo.Get(ctx, username)
		if errors.Is(err, common.ErrNotFound) {
			r := journal.NewRecord(password)
			out, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("failed to encode record for %q: %w", username, err)
			}
			if err := repo.Set(ctx, username, out); err != nil {
				return err
			}
			s.log.Info(ctx, "created record for new user", "username", username)
			rec = r
			return nil
		}
		if err != nil {
			return err
		}

		r := &journal.Record{}
		if err := json.Unmarshal(data, r); err != nil {
			return fmt.Errorf("failed to decode record for %q: %w", username, err)
		}
		if r.Password != password {
			return common.ErrAuth
		}

		if Normalize(r) {
			s.log.Debug(ctx, "record upgraded on login", "username", username)
		}
		out, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode record for %q: %w", username, err)
		}
		if err := repo.Set(ctx, username, out); err != nil {
			return err
		}
		rec = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Record returns the normalized record for username, persisting any repairs
// the normalization pass made. This is the read-only accessor the chart and
// calendar views use.
func (s *Store) Record(ctx context.Context, username string) (*journal.Record, error) {
	return s.update(ctx, username, nil)
}

// RecordEmotion appends one emotion entry stamped with the current time.
// The label is trusted to belong to the mood's label set; the view only
// offers valid pairs.
func (s *Store) RecordEmotion(ctx context.Context, username string, mood journal.Mood, label string) error {
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		r.Emotions = append(r.Emotions, journal.EmotionEntry{
			Emotion: label,
			Mood:    mood,
			Date:    s.now().UTC().Format(time.RFC3339),
		})
		return nil
	})
	return err
}

// CreateBoard adds a new empty board titled title and returns its key. The
// key is the slug of the title; an unsluggable title falls back to a
// timestamped key, and collisions get numeric suffixes (-1, -2, ...).
func (s *Store) CreateBoard(ctx context.Context, username, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", common.ErrValidation
	}

	var key string
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		base := journal.Slugify(title)
		key = base
		if key == "" {
			key = fmt.Sprintf("board-%d", s.now().UnixMilli())
			base = key
		}
		for idx := 1; ; idx++ {
			if _, exists := r.BoardTitles[key]; !exists {
				break
			}
			key = fmt.Sprintf("%s-%d", base, idx)
		}
		r.Boards[key] = []journal.Post{}
		r.BoardTitles[key] = title
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// RenameBoard overwrites the display title of an existing board. Posts and
// lock state are untouched. Renaming an unknown key is a silent no-op.
func (s *Store) RenameBoard(ctx context.Context, username, key, newTitle string) error {
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		if _, ok := r.BoardTitles[key]; !ok {
			return nil
		}
		r.BoardTitles[key] = newTitle
		return nil
	})
	return err
}

// DeleteBoardResult tells the view how to react to a board deletion.
type DeleteBoardResult struct {
	// WasOpen is true when the deleted key matched openKey, i.e. the view
	// should navigate away from the board it is showing.
	WasOpen bool
	// NextKey is the first remaining board key, or "" when no boards are left.
	NextKey string
}

// DeleteBoard removes key from boards, boardTitles and locks in one step.
// The delete is unconditional; confirmation is a view concern. openKey is the
// board the caller currently has open ("" for none) and only influences the
// returned redirect hint.
func (s *Store) DeleteBoard(ctx context.Context, username, key, openKey string) (*DeleteBoardResult, error) {
	res := &DeleteBoardResult{WasOpen: key == openKey && key != ""}
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		delete(r.Boards, key)
		delete(r.BoardTitles, key)
		delete(r.Locks, key)
		if keys := r.BoardKeys(); len(keys) > 0 {
			res.NextKey = keys[0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// LockBoard sets a lock password on an unlocked board. Locking an already
// locked board leaves its existing password in place. An empty password fails
// with common.ErrValidation.
func (s *Store) LockBoard(ctx context.Context, username, key, lockPassword string) error {
	if lockPassword == "" {
		return common.ErrValidation
	}
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		if r.Locked(key) {
			return nil
		}
		r.Locks[key] = lockPassword
		return nil
	})
	return err
}

// UnlockBoard removes the lock from key when supplied matches the stored
// lock password. On mismatch the lock stays and common.ErrWrongLockPassword
// is returned. Unlocking a board that is not locked is a no-op.
func (s *Store) UnlockBoard(ctx context.Context, username, key, supplied string) error {
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		stored, ok := r.Locks[key]
		if !ok {
			return nil
		}
		if supplied != stored {
			return common.ErrWrongLockPassword
		}
		delete(r.Locks, key)
		return nil
	})
	return err
}

// AppendPost appends a free-text post to boardKey, creating the post sequence
// if absent. Empty text fails with common.ErrValidation. Posting to a locked
// board fails with common.ErrBoardLocked; the lock is enforced here rather
// than left to the view.
func (s *Store) AppendPost(ctx context.Context, username, boardKey, text string) error {
	if text == "" {
		return common.ErrValidation
	}
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		if r.Locked(boardKey) {
			return common.ErrBoardLocked
		}
		r.Boards[boardKey] = append(r.Boards[boardKey], journal.Post{
			Text: text,
			Time: s.now().Format(postTimeLayout),
		})
		return nil
	})
	return err
}

// VerifyAdminPassword compares supplied with the stored admin password,
// materializing (and persisting) the factory default when the field was
// missing.
func (s *Store) VerifyAdminPassword(ctx context.Context, username, supplied string) (bool, error) {
	var ok bool
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		ok = supplied == r.AdminPass
		return nil
	})
	if err != nil {
		return false, err
	}
	return ok, nil
}

// SetAdminPassword unconditionally overwrites the admin password. No
// current-password confirmation is required; the admin panel itself is the
// gate. An empty password fails with common.ErrValidation.
func (s *Store) SetAdminPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return common.ErrValidation
	}
	_, err := s.update(ctx, username, func(r *journal.Record) error {
		r.AdminPass = newPassword
		return nil
	})
	return err
}

// RecoverAdminPassword returns the stored admin password in the clear. When
// the field was missing it is reset to the factory default first and reset
// reports true. The plaintext reveal matches the stored format; see the
// journal.Record docs.
func (s *Store) RecoverAdminPassword(ctx context.Context, username string) (password string, reset bool, err error) {
	if username == "" {
		return "", false, common.ErrNotLoggedIn
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := records.NewSQLiteRepository(tx)

		data, err := repo.Get(ctx, username)
		if err != nil {
			return err
		}
		r := &journal.Record{}
		if err := json.Unmarshal(data, r); err != nil {
			return fmt.Errorf("failed to decode record for %q: %w", username, err)
		}

		reset = r.AdminPass == ""
		Normalize(r)
		password = r.AdminPass

		out, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to encode record for %q: %w", username, err)
		}
		return repo.Set(ctx, username, out)
	})
	if err != nil {
		return "", false, err
	}
	return password, reset, nil
}

// WipeAllData erases every record for every username. Irreversible; there is
// no per-user wipe. Callers must also clear any live session.
func (s *Store) WipeAllData(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return records.NewSQLiteRepository(tx).Clear(ctx)
	})
	if err != nil {
		return err
	}
	s.log.Warn(ctx, "all local data wiped")
	return nil
}
