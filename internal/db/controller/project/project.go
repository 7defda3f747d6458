// Package project provides read operations for project records.
package project

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/models"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a project by its ID.
func Get(db *gorm.DB, id uint64) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var proj models.Project
	result := db.First(&proj, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}

	return &proj, nil
}

// GetBySlug retrieves a project by its slug.
func GetBySlug(db *gorm.DB, slug string) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrProjectNotFound
	}

	var proj models.Project
	result := db.Where("slug = ?", slug).First(&proj)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, result.Error
	}

	return &proj, nil
}
