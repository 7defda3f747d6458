package settings

import (
	"github.com/pkg/errors"
)

// Definition is a base setting record as the definition store hands it over:
// identity plus a JSON blob of default parameters.
type Definition struct {
	ID          uint64
	Title       string
	Description string
	Group       string
	Type        string
	Params      string
}

// Override is one relationship row attaching a definition to a business
// area, notional table, or field spec. The machine name always comes from
// the override, never from the definition.
type Override struct {
	ID          uint64
	SettingID   uint64
	MachineName string
	Order       int
	Params      string
}

// Gather resolves one Setting per override row, in the rows' given order.
// Definitions merge under the override's params (override wins on top-level
// key collision), the resulting setting registers its machine name in reg,
// and its visibility rule, if any, is cached there too. Any failure aborts
// the whole gather.
func Gather(reg *Registry, defs []Definition, overrides []Override) ([]Setting, error) {
	result := make([]Setting, 0, len(overrides))

	for _, override := range overrides {
		def, ok := findDefinition(defs, override.SettingID)
		if !ok {
			return nil, errors.Wrapf(ErrConfiguration,
				"override %q references missing base definition %d", override.MachineName, override.SettingID)
		}

		setting, err := resolve(reg, def, override)
		if err != nil {
			return nil, err
		}

		result = append(result, setting)
	}

	return result, nil
}

func findDefinition(defs []Definition, id uint64) (Definition, bool) {
	for _, def := range defs {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// resolve merges one definition with its override and dispatches to the
// typed constructor.
func resolve(reg *Registry, def Definition, override Override) (Setting, error) {
	baseParams, err := ParseParams(def.Params)
	if err != nil {
		return nil, errors.Wrapf(err, "definition %q", def.Title)
	}

	overrideParams, err := ParseParams(override.Params)
	if err != nil {
		return nil, errors.Wrapf(err, "override %q", override.MachineName)
	}

	params := baseParams.Merge(overrideParams)

	title := params.StringOr(ParamTitle, def.Title)
	description := params.StringOr(ParamDescription, def.Description)

	b, err := newBase(override.ID, title, description, override.MachineName, Group(def.Group), override.Order, params)
	if err != nil {
		return nil, err
	}

	setting, err := construct(Type(def.Type), b)
	if err != nil {
		return nil, err
	}

	if err := reg.register(setting); err != nil {
		return nil, err
	}

	rule, ok, err := params.VisibilityRule()
	if err != nil {
		return nil, errors.Wrapf(err, "setting %q", title)
	}
	if ok {
		reg.addRule(setting.MachineName(), rule)
	}

	return setting, nil
}

// construct dispatches over the closed type set. The switch is exhaustive: a
// new Type constant without an arm lands in the configuration-error default,
// which the type tests pin down.
func construct(t Type, b base) (Setting, error) {
	switch t {
	case TypeDate:
		return newDateSetting(b)
	case TypeBoolean:
		return newBooleanSetting(b)
	case TypeInteger:
		return newIntegerSetting(b)
	case TypeChoice:
		return newChoiceSetting(b)
	case TypeCurrency:
		return newCurrencySetting(b)
	case TypeFloat:
		return newFloatSetting(b)
	case TypeDateRange:
		return newDateRangeSetting(b)
	default:
		return nil, errors.Wrapf(ErrConfiguration, "setting %q has unknown type %q", b.title, t)
	}
}
