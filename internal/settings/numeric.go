package settings

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Numeric settings tolerate an absent value: the bounds and the value are
// both metadata until a caller asks for the resolved number. Bounds are
// surfaced for input validation, not enforced against the default value at
// construction time.

func coerceInt(title string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		if t != float64(int64(t)) {
			return 0, errors.Wrapf(ErrValidation, "setting %q has non-integer value %v", title, t)
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, errors.Wrapf(ErrValidation, "setting %q has non-integer value %q", title, t)
		}
		return n, nil
	default:
		return 0, errors.Wrapf(ErrValidation, "setting %q has non-integer value %v", title, v)
	}
}

func coerceFloat(title string, v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrValidation, "setting %q has non-numeric value %q", title, t)
		}
		return f, nil
	default:
		return 0, errors.Wrapf(ErrValidation, "setting %q has non-numeric value %v", title, v)
	}
}

// IntegerSetting holds a whole-number value with optional min/max bounds.
type IntegerSetting struct {
	base
	min *int
	max *int
}

func newIntegerSetting(b base) (*IntegerSetting, error) {
	s := &IntegerSetting{base: b}

	for key, target := range map[string]**int{ParamMin: &s.min, ParamMax: &s.max} {
		if !b.params.Has(key) {
			continue
		}
		n, err := coerceInt(b.title, b.params[key])
		if err != nil {
			return nil, err
		}
		*target = &n
	}

	return s, nil
}

// Type returns TypeInteger.
func (s *IntegerSetting) Type() Type { return TypeInteger }

// HasValue reports whether a value entry is present.
func (s *IntegerSetting) HasValue() bool { return s.params.Has(ParamValue) }

// Value coerces the value entry to an int, caching the coerced form back
// into the params bag.
func (s *IntegerSetting) Value() (int, error) {
	if !s.HasValue() {
		return 0, errors.Wrapf(ErrValidation, "integer setting %q has no value", s.title)
	}

	n, err := coerceInt(s.title, s.params[ParamValue])
	if err != nil {
		return 0, err
	}

	s.params[ParamValue] = n

	return n, nil
}

// Bounds returns the optional min/max constraints; nil means unbounded.
func (s *IntegerSetting) Bounds() (minBound, maxBound *int) {
	return s.min, s.max
}

// Summary renders the setting for the specification document.
func (s *IntegerSetting) Summary() string {
	if n, err := s.Value(); err == nil {
		return strconv.Itoa(n)
	}
	return s.params.StringOr(ParamValue, "(not set)")
}

// ApplyValue overlays a stored user value, enforcing the bounds.
func (s *IntegerSetting) ApplyValue(value string) error {
	n, err := coerceInt(s.title, value)
	if err != nil {
		return err
	}

	if s.min != nil && n < *s.min {
		return errors.Wrapf(ErrValidation, "integer setting %q value %d below minimum %d", s.title, n, *s.min)
	}

	if s.max != nil && n > *s.max {
		return errors.Wrapf(ErrValidation, "integer setting %q value %d above maximum %d", s.title, n, *s.max)
	}

	s.params[ParamValue] = n

	return nil
}

// CurrencySetting holds a money amount with optional min/max bounds. Amounts
// resolve to decimals so generation arithmetic never rides on binary floats.
type CurrencySetting struct {
	base
	min *decimal.Decimal
	max *decimal.Decimal
}

func newCurrencySetting(b base) (*CurrencySetting, error) {
	s := &CurrencySetting{base: b}

	for key, target := range map[string]**decimal.Decimal{ParamMin: &s.min, ParamMax: &s.max} {
		if !b.params.Has(key) {
			continue
		}
		d, err := coerceDecimal(b.title, b.params[key])
		if err != nil {
			return nil, err
		}
		*target = &d
	}

	return s, nil
}

func coerceDecimal(title string, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Decimal{}, errors.Wrapf(ErrValidation, "setting %q has non-numeric value %q", title, t)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	default:
		return decimal.Decimal{}, errors.Wrapf(ErrValidation, "setting %q has non-numeric value %v", title, v)
	}
}

// Type returns TypeCurrency.
func (s *CurrencySetting) Type() Type { return TypeCurrency }

// HasValue reports whether a value entry is present.
func (s *CurrencySetting) HasValue() bool { return s.params.Has(ParamValue) }

// Value coerces the value entry to a decimal, caching the coerced form.
func (s *CurrencySetting) Value() (decimal.Decimal, error) {
	if !s.HasValue() {
		return decimal.Decimal{}, errors.Wrapf(ErrValidation, "currency setting %q has no value", s.title)
	}

	d, err := coerceDecimal(s.title, s.params[ParamValue])
	if err != nil {
		return decimal.Decimal{}, err
	}

	s.params[ParamValue] = d

	return d, nil
}

// Bounds returns the optional min/max constraints; nil means unbounded.
func (s *CurrencySetting) Bounds() (minBound, maxBound *decimal.Decimal) {
	return s.min, s.max
}

// Summary renders the setting for the specification document.
func (s *CurrencySetting) Summary() string {
	if d, err := s.Value(); err == nil {
		return d.StringFixed(2)
	}
	return s.params.StringOr(ParamValue, "(not set)")
}

// ApplyValue overlays a stored user value, enforcing the bounds.
func (s *CurrencySetting) ApplyValue(value string) error {
	d, err := coerceDecimal(s.title, value)
	if err != nil {
		return err
	}

	if s.min != nil && d.LessThan(*s.min) {
		return errors.Wrapf(ErrValidation, "currency setting %q value %s below minimum %s", s.title, d, s.min)
	}

	if s.max != nil && d.GreaterThan(*s.max) {
		return errors.Wrapf(ErrValidation, "currency setting %q value %s above maximum %s", s.title, d, s.max)
	}

	s.params[ParamValue] = d

	return nil
}

// FloatSetting holds a floating-point value with a configurable number of
// display decimals.
type FloatSetting struct {
	base
	decimals int
}

func newFloatSetting(b base) (*FloatSetting, error) {
	s := &FloatSetting{base: b, decimals: DefaultFloatDecimals}

	if b.params.Has(ParamDecimals) {
		n, err := coerceInt(b.title, b.params[ParamDecimals])
		if err != nil {
			return nil, err
		}
		s.decimals = n
	}

	return s, nil
}

// Type returns TypeFloat.
func (s *FloatSetting) Type() Type { return TypeFloat }

// HasValue reports whether a value entry is present.
func (s *FloatSetting) HasValue() bool { return s.params.Has(ParamValue) }

// Value coerces the value entry to a float64, caching the coerced form.
func (s *FloatSetting) Value() (float64, error) {
	if !s.HasValue() {
		return 0, errors.Wrapf(ErrValidation, "float setting %q has no value", s.title)
	}

	f, err := coerceFloat(s.title, s.params[ParamValue])
	if err != nil {
		return 0, err
	}

	s.params[ParamValue] = f

	return f, nil
}

// Decimals returns the number of display decimal places.
func (s *FloatSetting) Decimals() int { return s.decimals }

// Summary renders the setting for the specification document.
func (s *FloatSetting) Summary() string {
	if f, err := s.Value(); err == nil {
		return strconv.FormatFloat(f, 'f', s.decimals, 64)
	}
	return s.params.StringOr(ParamValue, "(not set)")
}

// ApplyValue overlays a stored user value.
func (s *FloatSetting) ApplyValue(value string) error {
	f, err := coerceFloat(s.title, value)
	if err != nil {
		return err
	}

	s.params[ParamValue] = f

	return nil
}
