package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// Boards lists every board with its key, title, post count and lock marker.
func (a *App) Boards(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	rec, err := a.store.Record(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "loading record failed", "err", err)
		return err
	}

	keys := rec.BoardKeys()
	if len(keys) == 0 {
		fmt.Fprintln(a.out, "No boards yet. Use 'add' to create one.")
		return nil
	}
	fmt.Fprintln(a.out, "Your boards:")
	for _, k := range keys {
		marker := " "
		if rec.Locked(k) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "  %s %-20s %s (%d posts)\n", marker, k, rec.BoardTitles[k], len(rec.Boards[k]))
	}
	return nil
}

// AddBoard prompts for a title and creates a board; the derived key is shown
// so the user can open it.
func (a *App) AddBoard(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "New board title", a.out)
	if err != nil {
		return err
	}

	key, err := a.store.CreateBoard(ctx, sess.Username, title)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, "Provide a board title")
		} else {
			a.log.Error(ctx, "creating board failed", "err", err)
		}
		return err
	}
	fmt.Fprintf(a.out, "Created board %q (key %s)\n", title, key)
	return nil
}

// RenameBoard prompts for a new title for the given key. Renaming a key that
// does not exist changes nothing; the store treats it as a no-op.
func (a *App) RenameBoard(ctx context.Context, key string) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	newTitle, err := GetSimpleText(a.reader, "New board title", a.out)
	if err != nil {
		return err
	}
	if newTitle == "" {
		fmt.Fprintln(a.out, "Provide a board title")
		return common.ErrValidation
	}

	if err := a.store.RenameBoard(ctx, sess.Username, key, newTitle); err != nil {
		a.log.Error(ctx, "renaming board failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "Board %s renamed to %q\n", key, newTitle)
	return nil
}

// DeleteBoard removes the board after a confirmation prompt. Deleting the
// board that is currently open moves the user to the first remaining board.
// There is no undo.
func (a *App) DeleteBoard(ctx context.Context, key string) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete board %q and its posts? (y/N)", key), a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	res, err := a.store.DeleteBoard(ctx, sess.Username, key, sess.Board)
	if err != nil {
		a.log.Error(ctx, "deleting board failed", "err", err)
		return err
	}
	fmt.Fprintf(a.out, "Board %s deleted\n", key)

	if res.WasOpen {
		sess.Board = res.NextKey
		if res.NextKey != "" {
			return a.Open(ctx, res.NextKey)
		}
	}
	return nil
}
