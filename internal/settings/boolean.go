package settings

import (
	"github.com/pkg/errors"
)

// BooleanSetting is an on/off setting. Values keep the stored string
// semantics: the literal "true" is on, anything else is off, and an absent
// value defaults to off.
type BooleanSetting struct {
	base
	value bool
}

func newBooleanSetting(b base) (*BooleanSetting, error) {
	s := &BooleanSetting{base: b}

	raw, ok := b.params.String(ParamValue)
	if !ok {
		raw = BooleanFalse
	}

	if raw != BooleanTrue && raw != BooleanFalse {
		return nil, errors.Wrapf(ErrValidation,
			"boolean setting %q has value %q, want %q or %q", b.title, raw, BooleanTrue, BooleanFalse)
	}

	s.value = raw == BooleanTrue
	// normalized back into the bag so later reads see a clean value
	b.params[ParamValue] = raw

	return s, nil
}

// Type returns TypeBoolean.
func (s *BooleanSetting) Type() Type { return TypeBoolean }

// Value returns the resolved boolean.
func (s *BooleanSetting) Value() bool { return s.value }

// Summary renders the setting for the specification document.
func (s *BooleanSetting) Summary() string {
	if s.value {
		return "on"
	}
	return "off"
}

// ApplyValue overlays a stored user value.
func (s *BooleanSetting) ApplyValue(value string) error {
	if value != BooleanTrue && value != BooleanFalse {
		return errors.Wrapf(ErrValidation,
			"boolean setting %q rejects value %q, want %q or %q", s.title, value, BooleanTrue, BooleanFalse)
	}

	s.value = value == BooleanTrue
	s.params[ParamValue] = value

	return nil
}
