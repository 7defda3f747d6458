package settings

import (
	"github.com/pkg/errors"
)

// Registry scopes machine-name uniqueness and visibility rules to a single
// project-tree assembly. Each assembly creates its own Registry and the
// assembled tree owns it; when the tree goes, the names go with it. Nothing
// here is process-wide.
type Registry struct {
	byName     map[string]Setting
	visibility map[string]Visibility
}

// NewRegistry returns an empty registry for one assembly pass.
func NewRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]Setting),
		visibility: make(map[string]Visibility),
	}
}

// register claims a machine name for s. Claiming is atomic and fail-fast: a
// second claim fails naming both the holder and the newcomer.
func (r *Registry) register(s Setting) error {
	name := s.MachineName()
	if existing, ok := r.byName[name]; ok {
		return errors.Wrapf(ErrConfiguration,
			"machine name %q already registered by %q, refused for %q",
			name, existing.Title(), s.Title())
	}

	r.byName[name] = s

	return nil
}

// Lookup returns the setting registered under name.
func (r *Registry) Lookup(name string) (Setting, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// Names returns how many machine names are registered.
func (r *Registry) Names() int {
	return len(r.byName)
}

// addRule caches a visibility rule keyed by the dependent setting's
// machine name.
func (r *Registry) addRule(dependent string, rule Visibility) {
	r.visibility[dependent] = rule
}

// Rule returns the visibility rule attached to the named setting, if any.
func (r *Registry) Rule(dependent string) (Visibility, bool) {
	rule, ok := r.visibility[dependent]
	return rule, ok
}

// Visible reports whether the named setting is currently visible: either no
// rule is attached, or the determiner setting resolves to the determining
// value. A rule pointing at an unregistered determiner hides the setting.
func (r *Registry) Visible(name string) bool {
	rule, ok := r.visibility[name]
	if !ok {
		return true
	}

	determiner, ok := r.byName[rule.Determiner]
	if !ok {
		return false
	}

	current, ok := determiner.Params().String(ParamValue)
	if !ok {
		return false
	}

	return current == rule.Value
}
