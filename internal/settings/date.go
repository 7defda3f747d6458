package settings

import (
	"time"

	"github.com/pkg/errors"
)

// Earliest dates the system accepts. Generated business data never predates
// the configured epoch, so settings below it are authoring mistakes.
var (
	MinStartDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	MinEndDate   = time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC)
)

// DateSetting holds a single calendar date. The value is required and must
// not fall before the setting's minimum date.
type DateSetting struct {
	base
	value   time.Time
	minDate time.Time
}

func newDateSetting(b base) (*DateSetting, error) {
	s := &DateSetting{base: b, minDate: MinStartDate}

	if raw, ok := b.params.String(ParamMinDate); ok {
		minDate, err := ParseDate(raw)
		if err != nil {
			return nil, err
		}
		s.minDate = minDate
	}

	value, err := resolveDate(b.title, b.params[ParamValue], b.params.Has(ParamValue))
	if err != nil {
		return nil, err
	}

	if value.Before(s.minDate) {
		return nil, errors.Wrapf(ErrValidation,
			"date setting %q value %s is before minimum date %s",
			b.title, FormatDate(value), FormatDate(s.minDate))
	}

	s.value = value
	b.params[ParamValue] = value

	return s, nil
}

func resolveDate(title string, raw any, present bool) (time.Time, error) {
	if !present {
		return time.Time{}, errors.Wrapf(ErrValidation, "date setting %q has no value", title)
	}

	switch t := raw.(type) {
	case time.Time:
		return t, nil
	case string:
		return ParseDate(t)
	default:
		return time.Time{}, errors.Wrapf(ErrValidation, "date setting %q has non-date value %v", title, raw)
	}
}

// Type returns TypeDate.
func (s *DateSetting) Type() Type { return TypeDate }

// Value returns the resolved date.
func (s *DateSetting) Value() time.Time { return s.value }

// MinDate returns the earliest date this setting accepts.
func (s *DateSetting) MinDate() time.Time { return s.minDate }

// Summary renders the setting for the specification document.
func (s *DateSetting) Summary() string {
	return FormatDate(s.value)
}

// ApplyValue overlays a stored user value in Y/M/D form.
func (s *DateSetting) ApplyValue(value string) error {
	d, err := ParseDate(value)
	if err != nil {
		return err
	}

	if d.Before(s.minDate) {
		return errors.Wrapf(ErrValidation,
			"date setting %q value %s is before minimum date %s",
			s.title, FormatDate(d), FormatDate(s.minDate))
	}

	s.value = d
	s.params[ParamValue] = d

	return nil
}

// DateRangeSetting holds a start and end date pair. Absent ends fall back to
// the package minimums, and ends below the minimums are clamped up to them.
type DateRangeSetting struct {
	base
	start time.Time
	end   time.Time
}

func newDateRangeSetting(b base) (*DateRangeSetting, error) {
	s := &DateRangeSetting{base: b, start: MinStartDate, end: MinEndDate}

	if raw, ok := b.params.String(ParamStartDate); ok {
		start, err := ParseDate(raw)
		if err != nil {
			return nil, err
		}
		s.start = start
	}

	if raw, ok := b.params.String(ParamEndDate); ok {
		end, err := ParseDate(raw)
		if err != nil {
			return nil, err
		}
		s.end = end
	}

	if s.start.Before(MinStartDate) {
		s.start = MinStartDate
	}

	if s.end.Before(MinEndDate) {
		s.end = MinEndDate
	}

	return s, nil
}

// Type returns TypeDateRange.
func (s *DateRangeSetting) Type() Type { return TypeDateRange }

// Start returns the range's first date.
func (s *DateRangeSetting) Start() time.Time { return s.start }

// End returns the range's last date.
func (s *DateRangeSetting) End() time.Time { return s.end }

// Summary renders the setting for the specification document.
func (s *DateRangeSetting) Summary() string {
	return FormatDate(s.start) + " to " + FormatDate(s.end)
}

// ApplyValue is unsupported: a range has no single value entry.
func (s *DateRangeSetting) ApplyValue(string) error {
	return errors.Wrapf(ErrValidation, "date range setting %q takes no single value", s.title)
}
