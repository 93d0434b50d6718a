package paths

import (
	"path/filepath"
	"testing"
)

func TestResolveConfigDirFlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if dir != "/flag/config" {
		t.Errorf("dir = %q, want /flag/config", dir)
	}
}

func TestResolveConfigDirEnvFallback(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if dir != "/env/config" {
		t.Errorf("dir = %q, want /env/config", dir)
	}
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	// Flag beats everything.
	dir, err := ResolveDataDir("/flag/data", "/yaml/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/flag/data" {
		t.Errorf("dir = %q, want /flag/data", dir)
	}

	// Config value beats env.
	dir, err = ResolveDataDir("", "/yaml/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/yaml/data" {
		t.Errorf("dir = %q, want /yaml/data", dir)
	}

	// Env beats default.
	dir, err = ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/env/data" {
		t.Errorf("dir = %q, want /env/data", dir)
	}
}

func TestResolveDataDirRelativeFlagIsAbsolutized(t *testing.T) {
	dir, err := ResolveDataDir("rel/data", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("dir %q is not absolute", dir)
	}
}
