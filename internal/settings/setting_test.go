package settings

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatherOne resolves a single setting through the public path.
func gatherOne(t *testing.T, settingType Type, defParams, overrideParams string) (Setting, error) {
	t.Helper()

	defs := []Definition{
		{ID: 1, Title: "Under test", Group: string(GroupBasic), Type: string(settingType), Params: defParams},
	}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "under_test", Order: 1, Params: overrideParams},
	}

	gathered, err := Gather(NewRegistry(), defs, overrides)
	if err != nil {
		return nil, err
	}

	require.Len(t, gathered, 1)

	return gathered[0], nil
}

func TestBooleanSetting(t *testing.T) {
	testCases := []struct {
		name      string
		params    string
		wantValue bool
		wantErr   error
	}{
		{name: "absent value defaults to false", params: "{}", wantValue: false},
		{name: "true string", params: `{"value":"true"}`, wantValue: true},
		{name: "false string", params: `{"value":"false"}`, wantValue: false},
		{name: "garbage value", params: `{"value":"yes"}`, wantErr: ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := gatherOne(t, TypeBoolean, "{}", tc.params)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			boolean, ok := s.(*BooleanSetting)
			require.True(t, ok)
			assert.Equal(t, tc.wantValue, boolean.Value())
		})
	}
}

func TestIntegerSetting(t *testing.T) {
	t.Run("absent value tolerated", func(t *testing.T) {
		s, err := gatherOne(t, TypeInteger, "{}", "{}")
		require.NoError(t, err)

		intSetting := s.(*IntegerSetting)
		assert.False(t, intSetting.HasValue())

		_, err = intSetting.Value()
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("string value coerced and memoized", func(t *testing.T) {
		s, err := gatherOne(t, TypeInteger, "{}", `{"value":"42"}`)
		require.NoError(t, err)

		intSetting := s.(*IntegerSetting)
		value, err := intSetting.Value()
		require.NoError(t, err)
		assert.Equal(t, 42, value)

		// coerced form written back into the bag
		assert.Equal(t, 42, intSetting.Params()[ParamValue])
	})

	t.Run("bounds surfaced not enforced", func(t *testing.T) {
		s, err := gatherOne(t, TypeInteger, `{"min":1,"max":10}`, `{"value":"500"}`)
		require.NoError(t, err, "out-of-bounds default must not fail construction")

		intSetting := s.(*IntegerSetting)
		minBound, maxBound := intSetting.Bounds()
		require.NotNil(t, minBound)
		require.NotNil(t, maxBound)
		assert.Equal(t, 1, *minBound)
		assert.Equal(t, 10, *maxBound)
	})

	t.Run("apply value enforces bounds", func(t *testing.T) {
		s, err := gatherOne(t, TypeInteger, `{"min":1,"max":10}`, `{"value":"5"}`)
		require.NoError(t, err)

		require.NoError(t, s.ApplyValue("7"))
		require.ErrorIs(t, s.ApplyValue("11"), ErrValidation)
		require.ErrorIs(t, s.ApplyValue("0"), ErrValidation)
		require.ErrorIs(t, s.ApplyValue("seven"), ErrValidation)
	})
}

func TestCurrencySetting(t *testing.T) {
	s, err := gatherOne(t, TypeCurrency, `{"value":"0.06"}`, "{}")
	require.NoError(t, err)

	currency := s.(*CurrencySetting)
	value, err := currency.Value()
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("0.06")))
	assert.Equal(t, "0.06", currency.Summary())
}

func TestFloatSetting(t *testing.T) {
	s, err := gatherOne(t, TypeFloat, `{"decimals":3}`, `{"value":"2.7182"}`)
	require.NoError(t, err)

	floatSetting := s.(*FloatSetting)
	value, err := floatSetting.Value()
	require.NoError(t, err)
	assert.InDelta(t, 2.7182, value, 0.00001)
	assert.Equal(t, 3, floatSetting.Decimals())
	assert.Equal(t, "2.718", floatSetting.Summary())
}

func TestChoiceSetting(t *testing.T) {
	choicesParams := `{"choices":[["standard","Standard"],["custom","Custom"]]}`

	testCases := []struct {
		name     string
		override string
		wantErr  error
	}{
		{name: "valid choice round-trips", override: `{"value":"custom"}`},
		{name: "value not among choices", override: `{"value":"bespoke"}`, wantErr: ErrValidation},
		{name: "missing value", override: "{}", wantErr: ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := gatherOne(t, TypeChoice, choicesParams, tc.override)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			choice := s.(*ChoiceSetting)
			assert.Equal(t, "custom", choice.Value())
			assert.Len(t, choice.Choices(), 2)
			assert.Equal(t, "Custom", choice.Summary())
		})
	}

	t.Run("missing choices enumeration", func(t *testing.T) {
		_, err := gatherOne(t, TypeChoice, "{}", `{"value":"standard"}`)
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestDateSetting(t *testing.T) {
	testCases := []struct {
		name     string
		override string
		want     time.Time
		wantErr  error
	}{
		{
			name:     "Y/M/D value",
			override: `{"value":"2003/7/15"}`,
			want:     time.Date(2003, time.July, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "below configured minimum date",
			override: `{"value":"1999/01/01"}`,
			wantErr:  ErrValidation,
		},
		{
			name:     "invalid format",
			override: `{"value":"15.07.2003"}`,
			wantErr:  ErrValidation,
		},
		{
			name:     "missing value",
			override: "{}",
			wantErr:  ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := gatherOne(t, TypeDate, "{}", tc.override)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			date := s.(*DateSetting)
			assert.True(t, tc.want.Equal(date.Value()))
		})
	}

	t.Run("custom minimum date", func(t *testing.T) {
		s, err := gatherOne(t, TypeDate, `{"mindate":"2010/1/1"}`, `{"value":"2012/6/1"}`)
		require.NoError(t, err)

		date := s.(*DateSetting)
		assert.True(t, date.MinDate().Equal(time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)))

		require.ErrorIs(t, s.ApplyValue("2009/12/31"), ErrValidation)
		require.NoError(t, s.ApplyValue("2011/1/1"))
	})
}

func TestDateRangeSetting(t *testing.T) {
	t.Run("defaults clamp to minimums", func(t *testing.T) {
		s, err := gatherOne(t, TypeDateRange, "{}", "{}")
		require.NoError(t, err)

		dateRange := s.(*DateRangeSetting)
		assert.True(t, dateRange.Start().Equal(MinStartDate))
		assert.True(t, dateRange.End().Equal(MinEndDate))
	})

	t.Run("below-minimum ends clamped up", func(t *testing.T) {
		s, err := gatherOne(t, TypeDateRange, "{}", `{"startdate":"1999/1/1","enddate":"1999/6/1"}`)
		require.NoError(t, err)

		dateRange := s.(*DateRangeSetting)
		assert.True(t, dateRange.Start().Equal(MinStartDate))
		assert.True(t, dateRange.End().Equal(MinEndDate))
	})

	t.Run("explicit range kept", func(t *testing.T) {
		s, err := gatherOne(t, TypeDateRange, "{}", `{"startdate":"2004/1/1","enddate":"2004/12/31"}`)
		require.NoError(t, err)

		dateRange := s.(*DateRangeSetting)
		assert.Equal(t, "2004/01/01 to 2004/12/31", dateRange.Summary())
	})
}

func TestMachineNameNormalized(t *testing.T) {
	defs := []Definition{
		{ID: 1, Title: "X", Group: string(GroupBasic), Type: string(TypeInteger), Params: "{}"},
	}
	overrides := []Override{
		{ID: 1, SettingID: 1, MachineName: "  MiXeD_Case  ", Order: 1, Params: "{}"},
	}

	reg := NewRegistry()
	gathered, err := Gather(reg, defs, overrides)
	require.NoError(t, err)
	assert.Equal(t, "mixed_case", gathered[0].MachineName())

	_, ok := reg.Lookup("mixed_case")
	assert.True(t, ok)
}
