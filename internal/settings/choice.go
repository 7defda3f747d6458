package settings

import (
	"github.com/pkg/errors"
)

// ChoiceSetting picks one code from an enumerated (code, label) list. The
// enumeration and a valid value are both required.
type ChoiceSetting struct {
	base
	choices []Choice
	value   string
}

func newChoiceSetting(b base) (*ChoiceSetting, error) {
	choices, err := b.params.ChoiceList()
	if err != nil {
		return nil, err
	}

	if len(choices) == 0 {
		return nil, errors.Wrapf(ErrValidation, "choice setting %q has no choices", b.title)
	}

	value, ok := b.params.String(ParamValue)
	if !ok {
		return nil, errors.Wrapf(ErrValidation, "choice setting %q has no value", b.title)
	}

	s := &ChoiceSetting{base: b, choices: choices}
	if !s.allowed(value) {
		return nil, errors.Wrapf(ErrValidation,
			"value %q for choice setting %q is not an available choice", value, b.title)
	}

	s.value = value
	b.params[ParamValue] = value

	return s, nil
}

func (s *ChoiceSetting) allowed(code string) bool {
	for _, c := range s.choices {
		if c.Code == code {
			return true
		}
	}
	return false
}

// Type returns TypeChoice.
func (s *ChoiceSetting) Type() Type { return TypeChoice }

// Choices returns the enumerated options.
func (s *ChoiceSetting) Choices() []Choice { return s.choices }

// Value returns the chosen code.
func (s *ChoiceSetting) Value() string { return s.value }

// Summary renders the chosen option's label for the specification document.
func (s *ChoiceSetting) Summary() string {
	for _, c := range s.choices {
		if c.Code == s.value {
			return c.Label
		}
	}
	return s.value
}

// ApplyValue overlays a stored user value, which must be an available code.
func (s *ChoiceSetting) ApplyValue(value string) error {
	if !s.allowed(value) {
		return errors.Wrapf(ErrValidation,
			"value %q for choice setting %q is not an available choice", value, s.title)
	}

	s.value = value
	s.params[ParamValue] = value

	return nil
}
