// This file implements the account store for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// Compile-time interface check.
var _ types.UserStore = (*usersTable)(nil)

// usersTable implements UserStore against the user table. Passwords are
// compared verbatim; there is no hashing anywhere in this layer.
type usersTable struct {
	backend *Backend
}

// Authenticate returns the user id for an exact (user_name, password) match.
// A miss is types.ErrNotFound, which callers present as invalid credentials.
func (ut *usersTable) Authenticate(userName, password string) (int64, error) {
	var id int64
	err := ut.backend.db.QueryRow(
		"SELECT user_id FROM user WHERE user_name = ? AND password = ?",
		userName, password,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("authenticating user: %w", err)
	}
	return id, nil
}

// Exists reports whether an account with the given user name exists.
func (ut *usersTable) Exists(userName string) (bool, error) {
	var id int64
	err := ut.backend.db.QueryRow(
		"SELECT user_id FROM user WHERE user_name = ?", userName,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking account existence: %w", err)
	}
	return true, nil
}

// Create inserts a new account. The insert is unconditional; callers check
// Exists first, since the schema does not make user_name unique.
func (ut *usersTable) Create(userName, password string) error {
	if userName == "" {
		return types.ErrInvalidUserName
	}
	if password == "" {
		return types.ErrInvalidPassword
	}

	_, err := ut.backend.db.Exec(
		"INSERT INTO user (user_name, password) VALUES (?, ?)",
		userName, password,
	)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	ut.backend.logger.Debug("created account", "user_name", userName)
	return nil
}

// Get returns the user with the given id, or types.ErrNotFound.
func (ut *usersTable) Get(userID int64) (*types.User, error) {
	var u types.User
	var email sql.NullString
	err := ut.backend.db.QueryRow(
		"SELECT user_id, user_name, password, email FROM user WHERE user_id = ?",
		userID,
	).Scan(&u.UserID, &u.UserName, &u.Password, &email)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}
	if email.Valid {
		u.Email = email.String
	}
	return &u, nil
}

// Update replaces the user's name, email, and password in one write.
// Returns types.ErrNotFound when no row matched.
func (ut *usersTable) Update(userID int64, userName, email, password string) error {
	if userName == "" {
		return types.ErrInvalidUserName
	}
	if password == "" {
		return types.ErrInvalidPassword
	}

	result, err := ut.backend.db.Exec(
		"UPDATE user SET user_name = ?, email = ?, password = ? WHERE user_id = ?",
		userName, nullString(email), password, userID,
	)
	if err != nil {
		return fmt.Errorf("updating user %d: %w", userID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	ut.backend.logger.Debug("updated user", "user_id", userID)
	return nil
}

// nullString maps an empty string to NULL so optional columns stay NULL
// instead of accumulating empty strings.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
