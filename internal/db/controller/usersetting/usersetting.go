// Package usersetting provides CRUD operations for user-chosen per-project
// setting values.
package usersetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

const (
	keyQueryPattern = "project_id = ? AND machine_name = ?"
)

var (
	// ErrUserSettingNotFound is returned when a user setting is not found.
	ErrUserSettingNotFound = errors.New("user setting not found")
	// ErrMachineNameEmpty is returned when attempting to store a value with an empty machine name.
	ErrMachineNameEmpty = errors.New("user setting machine name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves one stored value by project and machine name.
func Get(db *gorm.DB, projectID uint64, machineName string) (*models.UserSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if machineName == "" {
		return nil, ErrMachineNameEmpty
	}

	var stored models.UserSetting
	result := db.Where(keyQueryPattern, projectID, machineName).First(&stored)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserSettingNotFound
		}
		return nil, result.Error
	}

	return &stored, nil
}

// ForProject retrieves all stored values for a project.
func ForProject(db *gorm.DB, projectID uint64) ([]models.UserSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var stored []models.UserSetting
	result := db.Where("project_id = ?", projectID).Find(&stored)
	if result.Error != nil {
		return nil, result.Error
	}

	return stored, nil
}

// Set creates or updates a stored value (upsert operation).
func Set(db *gorm.DB, projectID uint64, machineName, value string) (*models.UserSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if machineName == "" {
		return nil, ErrMachineNameEmpty
	}

	var stored models.UserSetting
	result := db.Where(keyQueryPattern, projectID, machineName).First(&stored)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		stored = models.UserSetting{
			ProjectID:   projectID,
			MachineName: machineName,
			Value:       value,
		}
		if result = db.Create(&stored); result.Error != nil {
			return nil, result.Error
		}
		return &stored, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	stored.Value = value
	if result = db.Save(&stored); result.Error != nil {
		return nil, result.Error
	}

	return &stored, nil
}

// Delete removes one stored value by project and machine name.
func Delete(db *gorm.DB, projectID uint64, machineName string) error {
	if db == nil {
		return ErrDBNil
	}
	if machineName == "" {
		return ErrMachineNameEmpty
	}

	result := db.Where(keyQueryPattern, projectID, machineName).Delete(&models.UserSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserSettingNotFound
	}

	return nil
}

// DeleteForProject removes all stored values for a project.
func DeleteForProject(db *gorm.DB, projectID uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Where("project_id = ?", projectID).Delete(&models.UserSetting{})
	if result.Error != nil {
		return result.Error
	}

	return nil
}
