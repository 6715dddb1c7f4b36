package store

import "errors"

// Sentinel errors returned by store operations. Mutators surface them
// before any state change, audit write, or snapshot push; callers match
// with errors.Is.
var (
	// ErrUnauthorized means the acting user failed the permission check.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means a referenced record id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidState means the target record is already in a terminal
	// state for the requested operation.
	ErrInvalidState = errors.New("invalid record state")
)
