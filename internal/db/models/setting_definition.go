// Package models contains database model definitions.
package models

// SettingDefinition is a base setting record: a configurable parameter or
// anomaly toggle that override rows attach to business areas, notional
// tables, and field specs. Immutable at generation time.
type SettingDefinition struct {
	ID           uint64 `gorm:"primaryKey"`
	Title        string `validate:"required"`
	Description  string
	SettingGroup string `validate:"required,oneof=basic anomaly"`
	SettingType  string `validate:"required,oneof=date boolean integer choice currency float daterange"`
	Params       string `gorm:"type:text"`
}
