package types

import "errors"

// Config holds the parameters for Store.Open.
type Config struct {
	// DataDir is the directory holding the SQLite database file.
	// Created on Open if it does not exist. Empty means the current
	// working directory.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// DatabaseFile overrides the database file name. Empty means the
	// default "habitkeep.db".
	DatabaseFile string `json:"database_file,omitempty" yaml:"database_file,omitempty"`
}

// DefaultDatabaseFile is the database file name used when Config.DatabaseFile
// is empty.
const DefaultDatabaseFile = "habitkeep.db"

// Config validation errors.
var ErrDatabaseFileInvalid = errors.New("database file must not contain a path separator")

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	for _, r := range c.DatabaseFile {
		if r == '/' || r == '\\' {
			return ErrDatabaseFileInvalid
		}
	}
	return nil
}

// File returns the effective database file name.
func (c Config) File() string {
	if c.DatabaseFile != "" {
		return c.DatabaseFile
	}
	return DefaultDatabaseFile
}
