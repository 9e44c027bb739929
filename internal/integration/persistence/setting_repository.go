package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/integration/persistence/model"
)

// settingRepository implements the adapter.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository instance.
func NewSettingRepository(db *gorm.DB) adapter.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// Get retrieves the value for a key. Returns ("", nil) when the key is absent.
func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return settingModel.Value, nil
}

// Set upserts the value for a key.
func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	settingModel := model.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingModel).Error
}
