package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integerDefinition(id uint64) Definition {
	return Definition{
		ID:     id,
		Title:  "X",
		Group:  string(GroupBasic),
		Type:   string(TypeInteger),
		Params: "{}",
	}
}

func TestGatherOnePerOverrideInOrder(t *testing.T) {
	defs := []Definition{integerDefinition(1)}
	overrides := []Override{
		{ID: 10, SettingID: 1, MachineName: "third", Order: 3, Params: "{}"},
		{ID: 11, SettingID: 1, MachineName: "first", Order: 1, Params: "{}"},
		{ID: 12, SettingID: 1, MachineName: "second", Order: 2, Params: "{}"},
	}

	gathered, err := Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)
	require.Len(t, gathered, 3)

	// output order is the override rows' given order, not sorted
	assert.Equal(t, "third", gathered[0].MachineName())
	assert.Equal(t, "first", gathered[1].MachineName())
	assert.Equal(t, "second", gathered[2].MachineName())
}

func TestGatherIntegerScenario(t *testing.T) {
	defs := []Definition{integerDefinition(1)}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "x1", Order: 1, Params: `{"value":"5"}`},
	}

	gathered, err := Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)
	require.Len(t, gathered, 1)

	intSetting, ok := gathered[0].(*IntegerSetting)
	require.True(t, ok, "expected *IntegerSetting, got %T", gathered[0])
	assert.Equal(t, "x1", intSetting.MachineName())

	value, err := intSetting.Value()
	require.NoError(t, err)
	assert.Equal(t, 5, value)
}

func TestGatherMergePrecedence(t *testing.T) {
	defs := []Definition{
		{
			ID:     1,
			Title:  "Merged",
			Group:  string(GroupBasic),
			Type:   string(TypeInteger),
			Params: `{"a":1,"b":2}`,
		},
	}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "merged", Order: 1, Params: `{"b":3,"c":4}`},
	}

	gathered, err := Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)
	require.Len(t, gathered, 1)

	params := gathered[0].Params()
	assert.Equal(t, float64(1), params["a"])
	assert.Equal(t, float64(3), params["b"])
	assert.Equal(t, float64(4), params["c"])
}

func TestGatherTitleDescriptionOverride(t *testing.T) {
	defs := []Definition{
		{
			ID:          1,
			Title:       "Overridden",
			Description: "Overridden",
			Group:       string(GroupBasic),
			Type:        string(TypeBoolean),
			Params:      "{}",
		},
	}
	overrides := []Override{
		{
			ID:          1,
			SettingID:   1,
			MachineName: "named",
			Order:       1,
			Params:      `{"title":"Invoice date range","description":"Range for invoice dates"}`,
		},
	}

	gathered, err := Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)
	require.Len(t, gathered, 1)
	assert.Equal(t, "Invoice date range", gathered[0].Title())
	assert.Equal(t, "Range for invoice dates", gathered[0].Description())
}

func TestGatherFailures(t *testing.T) {
	testCases := []struct {
		name      string
		defs      []Definition
		overrides []Override
		wantErr   error
	}{
		{
			name: "missing base definition",
			defs: []Definition{integerDefinition(1)},
			overrides: []Override{
				{ID: 1, SettingID: 99, MachineName: "orphan", Order: 1, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
		{
			name: "unknown setting type",
			defs: []Definition{
				{ID: 1, Title: "X", Group: string(GroupBasic), Type: "matrix", Params: "{}"},
			},
			overrides: []Override{
				{ID: 1, SettingID: 1, MachineName: "x1", Order: 1, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
		{
			name: "unknown group",
			defs: []Definition{
				{ID: 1, Title: "X", Group: "cosmetic", Type: string(TypeInteger), Params: "{}"},
			},
			overrides: []Override{
				{ID: 1, SettingID: 1, MachineName: "x1", Order: 1, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
		{
			name: "invalid definition params",
			defs: []Definition{
				{ID: 1, Title: "X", Group: string(GroupBasic), Type: string(TypeInteger), Params: "{broken"},
			},
			overrides: []Override{
				{ID: 1, SettingID: 1, MachineName: "x1", Order: 1, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
		{
			name: "machine name with separator",
			defs: []Definition{integerDefinition(1)},
			overrides: []Override{
				{ID: 1, SettingID: 1, MachineName: "two words", Order: 1, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
		{
			name: "duplicate machine name fails on the second",
			defs: []Definition{integerDefinition(1)},
			overrides: []Override{
				{ID: 1, SettingID: 1, MachineName: "dup", Order: 1, Params: "{}"},
				{ID: 2, SettingID: 1, MachineName: "dup", Order: 2, Params: "{}"},
			},
			wantErr: ErrConfiguration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gathered, err := Gather(NewRegistry(), tc.defs, tc.overrides)
			require.Error(t, err)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, gathered)
		})
	}
}

func TestGatherDuplicateNameAcrossRegistriesIsFine(t *testing.T) {
	defs := []Definition{integerDefinition(1)}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "same", Order: 1, Params: "{}"},
	}

	_, err := Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)

	// a fresh assembly gets a fresh namespace
	_, err = Gather(NewRegistry(), defs, overrides)
	require.NoError(t, err)
}

func TestGatherVisibilityRuleCached(t *testing.T) {
	defs := []Definition{
		{
			ID:     1,
			Title:  "Distribution",
			Group:  string(GroupBasic),
			Type:   string(TypeChoice),
			Params: `{"choices":[["normal","Normal"],["skewed","Skewed"]],"value":"normal"}`,
		},
		{
			ID:     2,
			Title:  "Mean",
			Group:  string(GroupBasic),
			Type:   string(TypeCurrency),
			Params: `{"value":"800"}`,
		},
	}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "stat_dist", Order: 1, Params: "{}"},
		{
			ID: 2, SettingID: 2, MachineName: "dist_mean", Order: 2,
			Params: `{"visibility":{"determiner":"stat_dist","value":"normal"}}`,
		},
	}

	reg := NewRegistry()
	gathered, err := Gather(reg, defs, overrides)
	require.NoError(t, err)
	require.Len(t, gathered, 2)

	rule, ok := reg.Rule("dist_mean")
	require.True(t, ok)
	assert.Equal(t, "stat_dist", rule.Determiner)
	assert.Equal(t, "normal", rule.Value)

	// determiner currently holds the determining value
	assert.True(t, reg.Visible("dist_mean"))

	// flipping the determiner hides the dependent setting
	choice, ok := reg.Lookup("stat_dist")
	require.True(t, ok)
	require.NoError(t, choice.ApplyValue("skewed"))
	assert.False(t, reg.Visible("dist_mean"))

	// settings with no rule are always visible
	assert.True(t, reg.Visible("stat_dist"))
}
