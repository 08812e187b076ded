package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// Open makes key the current board and shows its posts. A locked board is
// announced but its posts stay hidden until it is unlocked.
func (a *App) Open(ctx context.Context, key string) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	rec, err := a.store.Record(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "loading record failed", "err", err)
		return err
	}

	title, ok := rec.BoardTitles[key]
	if !ok {
		fmt.Fprintf(a.out, "No board with key %s\n", key)
		return common.ErrNotFound
	}

	sess.Board = key
	fmt.Fprintf(a.out, "== %s ==\n", title)

	if rec.Locked(key) {
		fmt.Fprintln(a.out, "This board is locked. Use 'lock' to unlock it.")
		return nil
	}

	posts := rec.Boards[key]
	if len(posts) == 0 {
		fmt.Fprintln(a.out, "No posts yet. Use 'post' to write one.")
		return nil
	}
	for _, p := range posts {
		fmt.Fprintf(a.out, "- %s\n  %s\n", p.Text, p.Time)
	}
	return nil
}

// Post appends a free-text entry to the open board. The store refuses the
// write when the board is locked, even though this prompt is still offered.
func (a *App) Post(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}
	if sess.Board == "" {
		fmt.Fprintln(a.out, "Open a board first")
		return common.ErrNotFound
	}

	text, err := GetSimpleText(a.reader, "Write your post", a.out)
	if err != nil {
		return err
	}

	if err := a.store.AppendPost(ctx, sess.Username, sess.Board, text); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintln(a.out, "Nothing to save")
		case errors.Is(err, common.ErrBoardLocked):
			fmt.Fprintln(a.out, "This board is locked")
		default:
			a.log.Error(ctx, "saving post failed", "err", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Saved")
	return nil
}

// Lock toggles the lock on the open board: an unlocked board gets a new lock
// password, a locked one asks for the password and unlocks on a match.
func (a *App) Lock(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}
	if sess.Board == "" {
		fmt.Fprintln(a.out, "Open a board first")
		return common.ErrNotFound
	}

	rec, err := a.store.Record(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "loading record failed", "err", err)
		return err
	}

	if !rec.Locked(sess.Board) {
		pw, err := GetPassword("Set board password", a.out)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(pw)
		if err := a.store.LockBoard(ctx, sess.Username, sess.Board, string(pw)); err != nil {
			if errors.Is(err, common.ErrValidation) {
				fmt.Fprintln(a.out, "Empty password, board left unlocked")
			}
			return err
		}
		fmt.Fprintln(a.out, "Board locked")
		return nil
	}

	pw, err := GetPassword("Enter board password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	if err := a.store.UnlockBoard(ctx, sess.Username, sess.Board, string(pw)); err != nil {
		if errors.Is(err, common.ErrWrongLockPassword) {
			fmt.Fprintln(a.out, "Wrong password")
		}
		return err
	}
	fmt.Fprintln(a.out, "Board unlocked")
	return nil
}
