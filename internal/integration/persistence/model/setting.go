package model

import "time"

// SettingModel represents the app_settings key/value table, holding things
// like the PIN hash.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "app_settings"
}

// AllModels lists every model for migration.
func AllModels() []any {
	return []any{
		&CustomerModel{},
		&TransactionModel{},
		&ExpenseModel{},
		&SettingModel{},
	}
}
