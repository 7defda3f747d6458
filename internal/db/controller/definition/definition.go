// Package definition provides read operations for base setting definitions
// and the three override-relationship tables.
package definition

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrInvalidRow is returned when a stored row fails validation.
	ErrInvalidRow = errors.New("stored setting row is invalid")
)

var validate = validator.New()

// Definitions retrieves all base setting definitions.
func Definitions(db *gorm.DB) ([]models.SettingDefinition, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var defs []models.SettingDefinition
	if result := db.Find(&defs); result.Error != nil {
		return nil, result.Error
	}

	for i := range defs {
		if err := validate.Struct(&defs[i]); err != nil {
			return nil, errors.Join(ErrInvalidRow, err)
		}
	}

	return defs, nil
}

// AreaOverrides retrieves the override rows attached to a business area,
// ordered by display order.
func AreaOverrides(db *gorm.DB, areaID uint64) ([]models.BusinessAreaSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.BusinessAreaSetting
	result := db.Where("business_area_id = ?", areaID).Order("display_order").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range rows {
		if err := validate.Struct(&rows[i]); err != nil {
			return nil, errors.Join(ErrInvalidRow, err)
		}
	}

	return rows, nil
}

// TableOverrides retrieves the override rows attached to a notional table,
// ordered by display order.
func TableOverrides(db *gorm.DB, tableID uint64) ([]models.NotionalTableSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.NotionalTableSetting
	result := db.Where("notional_table_id = ?", tableID).Order("display_order").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range rows {
		if err := validate.Struct(&rows[i]); err != nil {
			return nil, errors.Join(ErrInvalidRow, err)
		}
	}

	return rows, nil
}

// FieldOverrides retrieves the override rows attached to a field spec,
// ordered by display order.
func FieldOverrides(db *gorm.DB, fieldID uint64) ([]models.FieldSpecSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.FieldSpecSetting
	result := db.Where("field_spec_id = ?", fieldID).Order("display_order").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range rows {
		if err := validate.Struct(&rows[i]); err != nil {
			return nil, errors.Join(ErrInvalidRow, err)
		}
	}

	return rows, nil
}
