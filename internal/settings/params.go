package settings

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Params is a setting's merged parameter bag. Stored JSON blobs are parsed
// into it exactly once, at resolution time; typed accessors and the variant
// constructors coerce entries from there. Coerced values are written back
// into the bag so repeated access does not repeat the coercion.
type Params map[string]any

// ParseParams parses a stored JSON parameter blob. An empty blob is an empty
// bag. A blob that is not a JSON object is a configuration error.
func ParseParams(blob string) (Params, error) {
	if blob == "" {
		return Params{}, nil
	}

	var p Params
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return nil, errors.Wrapf(ErrConfiguration, "params are not valid JSON: %q", blob)
	}

	return p, nil
}

// Merge returns a new bag holding p's entries with over's applied on top.
// Replacement happens at the top level only; nested objects are not merged.
func (p Params) Merge(over Params) Params {
	merged := make(Params, len(p)+len(over))
	for k, v := range p {
		merged[k] = v
	}

	for k, v := range over {
		merged[k] = v
	}

	return merged
}

// Has reports whether the bag contains key.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the entry for key rendered as a string, and whether the key
// was present. Numbers are formatted the way JSON carried them.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}

	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return trimFloat(t), true
	case int:
		return fmt.Sprintf("%d", t), true
	case bool:
		if t {
			return BooleanTrue, true
		}
		return BooleanFalse, true
	default:
		return fmt.Sprintf("%v", t), true
	}
}

// StringOr returns the entry for key as a string, or def when absent.
func (p Params) StringOr(key, def string) string {
	if s, ok := p.String(key); ok {
		return s
	}
	return def
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// Choice is one (code, label) pair of a choice setting's enumeration.
type Choice struct {
	Code  string
	Label string
}

// ChoiceList extracts the choices enumeration from the bag. Accepted JSON
// shapes are a list of [code, label] pairs and a list of
// {"code": ..., "label": ...} objects.
func (p Params) ChoiceList() ([]Choice, error) {
	raw, ok := p[ParamChoices]
	if !ok {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, errors.Wrapf(ErrConfiguration, "choices param is not a list: %v", raw)
	}

	choices := make([]Choice, 0, len(items))

	for _, item := range items {
		switch t := item.(type) {
		case []any:
			if len(t) != 2 {
				return nil, errors.Wrapf(ErrConfiguration, "choice pair needs exactly code and label: %v", t)
			}
			code, _ := asString(t[0])
			label, _ := asString(t[1])
			choices = append(choices, Choice{Code: code, Label: label})
		case map[string]any:
			code, _ := asString(t["code"])
			label, _ := asString(t["label"])
			choices = append(choices, Choice{Code: code, Label: label})
		default:
			return nil, errors.Wrapf(ErrConfiguration, "choice entry has unexpected shape: %v", item)
		}
	}

	return choices, nil
}

// Visibility is a dependency rule: the setting carrying it should only be
// shown or applied while the setting named Determiner resolves to Value.
type Visibility struct {
	Determiner string
	Value      string
}

// VisibilityRule extracts the visibility dependency from the bag, if any.
func (p Params) VisibilityRule() (Visibility, bool, error) {
	raw, ok := p[ParamVisibility]
	if !ok {
		return Visibility{}, false, nil
	}

	entry, ok := raw.(map[string]any)
	if !ok {
		return Visibility{}, false, errors.Wrapf(ErrConfiguration, "visibility param is not an object: %v", raw)
	}

	determiner, ok := asString(entry["determiner"])
	if !ok || determiner == "" {
		return Visibility{}, false, errors.Wrap(ErrConfiguration, "visibility param needs a determiner machine name")
	}

	value, ok := asString(entry["value"])
	if !ok {
		return Visibility{}, false, errors.Wrap(ErrConfiguration, "visibility param needs a determining value")
	}

	return Visibility{Determiner: determiner, Value: value}, true, nil
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return trimFloat(t), true
	default:
		return "", false
	}
}

// DateLayout is the Y/M/D form dates take in parameter bags.
const DateLayout = "2006/1/2"

// ParseDate parses a Y/M/D date string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrValidation, "dates must be in Y/M/D format, got %q", s)
	}
	return d, nil
}

// FormatDate renders a date the way parameter bags store it.
func FormatDate(d time.Time) string {
	return d.Format("2006/01/02")
}
