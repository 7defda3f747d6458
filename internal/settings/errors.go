package settings

import (
	"errors"
)

var (
	// ErrConfiguration is returned for data-authoring mistakes: unknown setting
	// types or groups, overrides referencing missing base definitions, duplicate
	// machine names, malformed parameter JSON. Always fatal, never retried.
	ErrConfiguration = errors.New("settings configuration error")

	// ErrValidation is returned when a setting value cannot be resolved to the
	// setting's native type, is out of range, or is not an allowed choice.
	// Fatal for the tree assembly in progress.
	ErrValidation = errors.New("settings validation error")
)
