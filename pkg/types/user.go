package types

import "errors"

// User represents an account. The user name is the canonical login
// identifier; email is an optional profile field.
//
// Passwords are stored and compared in plaintext. That reproduces the
// source behavior this layer is contracted to preserve; it is not a
// recommendation.
type User struct {
	UserID   int64  // AUTOINCREMENT primary key, assigned on insert.
	UserName string // Login identifier (required, non-empty).
	Password string // Plaintext credential.
	Email    string // Optional; empty when the column is NULL.
}

// Account operation errors.
var (
	ErrInvalidUserName = errors.New("user name must not be empty")
	ErrInvalidPassword = errors.New("password must not be empty")
)
