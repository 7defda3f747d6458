package settings

import (
	"strings"

	"github.com/pkg/errors"
)

// Setting is the resolved, typed in-memory form of one setting, ready for
// the generator or for display. The variant set is closed: only this package
// implements it, one variant per Type.
type Setting interface {
	ID() uint64
	Title() string
	Description() string
	// Label is the custom display label from params, else the title.
	Label() string
	MachineName() string
	Group() Group
	Type() Type
	Order() int
	Params() Params

	// Summary renders the resolved value for the project specification
	// document. It never fails; unresolvable values render as-is.
	Summary() string

	// ApplyValue overlays a stored user value onto the setting, validating
	// it against the variant's rules before storing it in the params bag.
	ApplyValue(value string) error

	sealed()
}

// base carries the fields every variant shares. Variants embed it.
type base struct {
	id          uint64
	title       string
	description string
	label       string
	machineName string
	group       Group
	order       int
	params      Params
}

// newBase validates the shared attributes. The machine name is trimmed and
// lowercased before the checks; it is registered by the caller once the full
// variant has been built.
func newBase(id uint64, title, description, machineName string, group Group, order int, params Params) (base, error) {
	if id == 0 {
		return base{}, errors.Wrapf(ErrConfiguration, "setting %q has no id", title)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return base{}, errors.Wrapf(ErrConfiguration, "setting %d has an empty title", id)
	}

	machineName = strings.ToLower(strings.TrimSpace(machineName))
	if machineName == "" {
		return base{}, errors.Wrapf(ErrConfiguration, "setting %q has an empty machine name", title)
	}

	if strings.Contains(machineName, AggregateSeparator) {
		return base{}, errors.Wrapf(ErrConfiguration,
			"machine name %q of setting %q contains the aggregate separator", machineName, title)
	}

	if !KnownGroup(group) {
		return base{}, errors.Wrapf(ErrConfiguration, "setting %q has unknown group %q", title, group)
	}

	if params == nil {
		params = Params{}
	}

	label := params.StringOr(ParamLabel, title)

	return base{
		id:          id,
		title:       title,
		description: strings.TrimSpace(description),
		label:       label,
		machineName: machineName,
		group:       group,
		order:       order,
		params:      params,
	}, nil
}

func (b *base) ID() uint64          { return b.id }
func (b *base) Title() string       { return b.title }
func (b *base) Description() string { return b.description }
func (b *base) Label() string       { return b.label }
func (b *base) MachineName() string { return b.machineName }
func (b *base) Group() Group        { return b.group }
func (b *base) Order() int          { return b.order }
func (b *base) Params() Params      { return b.params }

func (b *base) sealed() {}
