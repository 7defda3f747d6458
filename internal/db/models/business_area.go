package models

// BusinessArea is a top-level configurable domain, e.g. Revenue.
type BusinessArea struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `validate:"required"`
	Description string
}

// NotionalTable is a synthetic relational table definition inside a
// business area, e.g. Customer.
type NotionalTable struct {
	ID             uint64 `gorm:"primaryKey"`
	BusinessAreaID uint64 `gorm:"index" validate:"required"`
	Title          string `validate:"required"`
	Description    string
	DisplayOrder   int `validate:"gt=0"`
}
