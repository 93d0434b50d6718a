// Tests for the account store.
package sqlite

import (
	"errors"
	"testing"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// openUsers returns the account store of a fresh backend.
func openUsers(t *testing.T) types.UserStore {
	t.Helper()
	b := newOpenBackend(t)
	users, err := b.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	return users
}

func TestUsers_CreateAndAuthenticate(t *testing.T) {
	users := openUsers(t)

	if err := users.Create("alice", "secret"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	id, err := users.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive user id, got %d", id)
	}
}

func TestUsers_AuthenticateRejectsWrongPassword(t *testing.T) {
	users := openUsers(t)

	if err := users.Create("alice", "secret"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := users.Authenticate("alice", "wrong"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("wrong password: expected ErrNotFound, got %v", err)
	}
	if _, err := users.Authenticate("bob", "secret"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("unknown user: expected ErrNotFound, got %v", err)
	}
}

func TestUsers_CreateValidation(t *testing.T) {
	users := openUsers(t)

	if err := users.Create("", "secret"); !errors.Is(err, types.ErrInvalidUserName) {
		t.Errorf("empty name: expected ErrInvalidUserName, got %v", err)
	}
	if err := users.Create("alice", ""); !errors.Is(err, types.ErrInvalidPassword) {
		t.Errorf("empty password: expected ErrInvalidPassword, got %v", err)
	}
}

func TestUsers_Exists(t *testing.T) {
	users := openUsers(t)

	exists, err := users.Exists("alice")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Exists reported true before Create")
	}

	if err := users.Create("alice", "secret"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err = users.Exists("alice")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("Exists reported false after Create")
	}
}

func TestUsers_Get(t *testing.T) {
	users := openUsers(t)

	if err := users.Create("alice", "secret"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id, err := users.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	u, err := users.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if u.UserName != "alice" {
		t.Errorf("UserName = %q, want alice", u.UserName)
	}
	if u.Email != "" {
		t.Errorf("Email = %q, want empty for new account", u.Email)
	}

	if _, err := users.Get(9999); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("missing user: expected ErrNotFound, got %v", err)
	}
}

func TestUsers_Update(t *testing.T) {
	users := openUsers(t)

	if err := users.Create("alice", "secret"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	id, err := users.Authenticate("alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}

	if err := users.Update(id, "alice2", "alice@example.com", "newpass"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	u, err := users.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if u.UserName != "alice2" || u.Email != "alice@example.com" || u.Password != "newpass" {
		t.Errorf("update not applied: %+v", u)
	}

	// Old credentials no longer authenticate.
	if _, err := users.Authenticate("alice", "secret"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("old credentials should fail, got %v", err)
	}

	if err := users.Update(9999, "ghost", "", "pw"); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("missing user: expected ErrNotFound, got %v", err)
	}
}
