// Package area provides read operations for business areas, their notional
// tables, and the field specs inside those tables.
package area

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

var (
	// ErrAreaNotFound is returned when a business area is not found.
	ErrAreaNotFound = errors.New("business area not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a business area by its ID.
func Get(db *gorm.DB, id uint64) (*models.BusinessArea, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var businessArea models.BusinessArea
	result := db.First(&businessArea, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAreaNotFound
		}
		return nil, result.Error
	}

	return &businessArea, nil
}

// Tables retrieves a business area's notional tables in display order.
func Tables(db *gorm.DB, areaID uint64) ([]models.NotionalTable, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var tables []models.NotionalTable
	result := db.Where("business_area_id = ?", areaID).Order("display_order").Find(&tables)
	if result.Error != nil {
		return nil, result.Error
	}

	return tables, nil
}

// Fields retrieves a notional table's field specs in field order.
func Fields(db *gorm.DB, tableID uint64) ([]models.FieldSpec, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var fields []models.FieldSpec
	result := db.Where("notional_table_id = ?", tableID).Order("field_order").Find(&fields)
	if result.Error != nil {
		return nil, result.Error
	}

	return fields, nil
}
