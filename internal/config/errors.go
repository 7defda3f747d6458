package config

import (
	"errors"
)

var (
	// ErrUnknownDBEngine error if config db.gormengine is not a supported engine.
	ErrUnknownDBEngine = errors.New("toml config db.gormengine must be mysql or sqlite")

	// ErrEmptyDBName error if the mysql engine has no database name.
	ErrEmptyDBName = errors.New("toml config db.name can not be empty for the mysql engine")

	// ErrEmptyDBPath error if the sqlite engine has no database file.
	ErrEmptyDBPath = errors.New("toml config db.path can not be empty for the sqlite engine")
)
