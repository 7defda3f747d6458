package models

// The three override-relationship tables. Each row attaches one setting
// definition to an owner, names it, orders it, and carries JSON parameter
// overrides merged over the definition's defaults.

// BusinessAreaSetting attaches a setting definition to a business area.
type BusinessAreaSetting struct {
	ID                  uint64 `gorm:"primaryKey"`
	BusinessAreaID      uint64 `gorm:"index" validate:"required"`
	SettingDefinitionID uint64 `validate:"required"`
	MachineName         string `gorm:"unique" validate:"required"`
	DisplayOrder        int    `validate:"gt=0"`
	Params              string `gorm:"type:text"`
}

// NotionalTableSetting attaches a setting definition to a notional table.
type NotionalTableSetting struct {
	ID                  uint64 `gorm:"primaryKey"`
	NotionalTableID     uint64 `gorm:"index" validate:"required"`
	SettingDefinitionID uint64 `validate:"required"`
	MachineName         string `gorm:"unique" validate:"required"`
	DisplayOrder        int    `validate:"gt=0"`
	Params              string `gorm:"type:text"`
}

// FieldSpecSetting attaches a setting definition to a field spec.
type FieldSpecSetting struct {
	ID                  uint64 `gorm:"primaryKey"`
	FieldSpecID         uint64 `gorm:"index" validate:"required"`
	SettingDefinitionID uint64 `validate:"required"`
	MachineName         string `gorm:"unique" validate:"required"`
	DisplayOrder        int    `validate:"gt=0"`
	Params              string `gorm:"type:text"`
}
