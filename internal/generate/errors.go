package generate

import "github.com/pkg/errors"

// ErrGeneration marks a generation run that cannot proceed, usually because
// the project tree is missing a setting the generator depends on or a stored
// value resolves to something unusable.
var ErrGeneration = errors.New("generation error")
