// Package integration provides end-to-end tests exercising the full store
// stack through the public interfaces.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/habitkeep/habitkeep/internal/sqlite"
	"github.com/habitkeep/habitkeep/pkg/types"
)

// newOpenBackend opens a backend on a fresh temp directory and registers
// cleanup.
func newOpenBackend(t *testing.T) (*sqlite.Backend, types.Config) {
	t.Helper()

	config := types.Config{DataDir: t.TempDir()}
	b := sqlite.NewBackend()
	require.NoError(t, b.Open(config))
	t.Cleanup(func() { b.Close() })
	return b, config
}

// newBackendOn opens a backend on an existing data directory.
func newBackendOn(t *testing.T, config types.Config) *sqlite.Backend {
	t.Helper()

	b := sqlite.NewBackend()
	require.NoError(t, b.Open(config))
	t.Cleanup(func() { b.Close() })
	return b
}

// createAccount creates an account and returns the authenticated user id.
func createAccount(t *testing.T, b *sqlite.Backend, name, password string) int64 {
	t.Helper()

	users, err := b.Users()
	require.NoError(t, err)
	require.NoError(t, users.Create(name, password))
	id, err := users.Authenticate(name, password)
	require.NoError(t, err)
	return id
}
