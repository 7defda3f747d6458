package models

// Project is one user's configuration of a business area.
type Project struct {
	ID             uint64 `gorm:"primaryKey"`
	Title          string `validate:"required"`
	Description    string
	Slug           string `gorm:"unique" validate:"required"`
	BusinessAreaID uint64 `gorm:"index" validate:"required"`
}
