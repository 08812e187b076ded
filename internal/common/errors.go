// Package common defines shared constants and sentinel errors used across
// moodkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (empty required input).
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrAuth        = errors.New("wrong password")
	ErrNotLoggedIn = errors.New("not logged in")

	// Board-lock errors.
	ErrWrongLockPassword = errors.New("wrong board password")
	ErrBoardLocked       = errors.New("board is locked")
)
