// Package settings implements the resolved, typed in-memory form of the
// cascading project settings: parameter-bag merging, typed variants with
// value coercion, per-assembly machine-name registration, and visibility
// dependencies between settings.
package settings

// Group classifies a setting as a basic parameter or a deliberate anomaly.
type Group string

// Known setting groups.
const (
	GroupBasic   Group = "basic"
	GroupAnomaly Group = "anomaly"
)

// KnownGroup reports whether g is one of the two known groups.
func KnownGroup(g Group) bool {
	return g == GroupBasic || g == GroupAnomaly
}

// Type discriminates the typed setting variants. The set is closed; the
// gatherer factory switches over it exhaustively.
type Type string

// Known setting types.
const (
	TypeDate      Type = "date"
	TypeBoolean   Type = "boolean"
	TypeInteger   Type = "integer"
	TypeChoice    Type = "choice"
	TypeCurrency  Type = "currency"
	TypeFloat     Type = "float"
	TypeDateRange Type = "daterange"
)

// Parameter keys recognized inside a setting's merged parameter bag.
const (
	ParamValue       = "value"
	ParamTitle       = "title"
	ParamDescription = "description"
	ParamLabel       = "label"
	ParamMin         = "min"
	ParamMax         = "max"
	ParamChoices     = "choices"
	ParamDecimals    = "decimals"
	ParamStartDate   = "startdate"
	ParamEndDate     = "enddate"
	ParamMinDate     = "mindate"
	ParamVisibility  = "visibility"
)

// Boolean settings carry string values, not native booleans.
const (
	BooleanTrue  = "true"
	BooleanFalse = "false"
)

// AggregateSeparator joins machine names into aggregate identifiers elsewhere
// in the system, so a single machine name must never contain it.
const AggregateSeparator = " "

// DefaultFloatDecimals is the number of decimal places a float setting shows
// when its params don't say otherwise.
const DefaultFloatDecimals = 2
