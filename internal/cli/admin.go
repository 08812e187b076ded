package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// Admin asks for the admin password and unlocks the admin commands (chadmin,
// wipe) for the rest of the session. The factory password is seeded into
// every record; 'recover' reveals the current one.
func (a *App) Admin(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	pw, err := GetPassword("Admin password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	ok, err := a.store.VerifyAdminPassword(ctx, sess.Username, string(pw))
	if err != nil {
		a.log.Error(ctx, "verifying admin password failed", "err", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Wrong admin password")
		return common.ErrAuth
	}

	a.adminUnlocked = true
	fmt.Fprintln(a.out, "Admin unlocked.")
	return nil
}

// ChangeAdminPass overwrites the admin password. Requires a prior 'admin'
// unlock; the current password is not asked again.
func (a *App) ChangeAdminPass(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}
	if !a.adminUnlocked {
		fmt.Fprintln(a.out, "Unlock admin first")
		return common.ErrAuth
	}

	pw, err := GetPassword("New admin password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if err := a.store.SetAdminPassword(ctx, sess.Username, string(pw)); err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Fprintln(a.out, "Empty password, nothing changed")
		} else {
			a.log.Error(ctx, "changing admin password failed", "err", err)
		}
		return err
	}
	fmt.Fprintln(a.out, "Admin password updated.")
	return nil
}

// RecoverAdmin reveals the stored admin password, resetting it to the factory
// default first when the field went missing. Available to any logged-in user;
// the record stores the admin password in plain text.
func (a *App) RecoverAdmin(ctx context.Context) error {
	sess, err := a.requireLogin()
	if err != nil {
		return err
	}

	pass, reset, err := a.store.RecoverAdminPassword(ctx, sess.Username)
	if err != nil {
		a.log.Error(ctx, "recovering admin password failed", "err", err)
		return err
	}
	if reset {
		fmt.Fprintf(a.out, "Admin password was missing; it has been reset to %q.\n", pass)
		return nil
	}
	fmt.Fprintf(a.out, "Stored admin password for user %q: %q\n", sess.Username, pass)
	return nil
}

// Wipe erases every record for every username and ends the session. Requires
// admin unlock and a typed confirmation; there is no way back.
func (a *App) Wipe(ctx context.Context) error {
	_, err := a.requireLogin()
	if err != nil {
		return err
	}
	if !a.adminUnlocked {
		fmt.Fprintln(a.out, "Unlock admin first")
		return common.ErrAuth
	}

	answer, err := GetSimpleText(a.reader, "Delete ALL data for ALL users? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.store.WipeAllData(ctx); err != nil {
		a.log.Error(ctx, "wipe failed", "err", err)
		return err
	}
	a.sessions.Clear()
	a.adminUnlocked = false
	fmt.Fprintln(a.out, "All local data cleared.")
	return nil
}
