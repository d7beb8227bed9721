package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a transactional handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when an insert violates a uniqueness constraint,
	// such as a transaction hash or wallet address that is already stored.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUserNotFound is returned by user list mutations when the user does not exist.
	ErrUserNotFound = errors.New("user not found")
)
