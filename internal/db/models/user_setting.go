package models

// UserSetting stores one user-chosen setting value for a project, keyed by
// the setting's machine name. Values referencing machine names that no
// longer exist are stale data, not errors.
type UserSetting struct {
	ID          uint64 `gorm:"primaryKey"`
	ProjectID   uint64 `gorm:"index:idx_user_setting,unique"`
	MachineName string `gorm:"index:idx_user_setting,unique"`
	Value       string
}
