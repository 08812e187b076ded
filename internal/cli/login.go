package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// Login asks for a username and password and authenticates against the local
// store. A never-seen username gets a fresh record, so login doubles as
// registration. There is no retry limit.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rec, err := a.store.Authenticate(ctx, username, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintln(a.out, "Username & password required")
		case errors.Is(err, common.ErrAuth):
			fmt.Fprintln(a.out, "Wrong password")
		default:
			a.log.Error(ctx, "login failed", "err", err)
		}
		return err
	}

	a.sessions.Start(username)
	a.adminUnlocked = false
	a.log.Info(ctx, "logged in", "username", username, "session", a.sessions.Current().ID)
	fmt.Fprintf(a.out, "Welcome, %s. You have %d boards.\n", username, len(rec.BoardTitles))
	return nil
}

// Logout discards the session. Nothing is written; all record state already
// lives in the store.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return common.ErrNotLoggedIn
	}
	a.log.Info(ctx, "logged out", "username", a.username())
	a.sessions.Clear()
	a.adminUnlocked = false
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
