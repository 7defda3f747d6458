package models

// FieldSpec is a column definition inside a notional table.
type FieldSpec struct {
	ID              uint64 `gorm:"primaryKey"`
	NotionalTableID uint64 `gorm:"index" validate:"required"`
	Title           string `validate:"required"`
	Description     string
	FieldType       string `validate:"required,oneof=pk fk text zip phone email date choice currency int"`
	FieldOrder      int    `validate:"gt=0"`
}
