// Package settingrepo persists operational key/value configuration, such as
// the reclamation schedule.
package settingrepo

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingDTO is one configuration row.
type SettingDTO struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// TableName overrides GORM's default naming to use "settings".
func (SettingDTO) TableName() string {
	return "settings"
}

// GormSettingRepository implements ports.SettingRepository using GORM.
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GORM setting repository.
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get retrieves a setting value by key.
func (r *GormSettingRepository) Get(ctx context.Context, key string) (string, error) {
	var dto SettingDTO
	err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("setting", key)
		}
		return "", err
	}

	return dto.Value, nil
}

// Set stores a setting value, overwriting any previous one.
func (r *GormSettingRepository) Set(ctx context.Context, key, value string) error {
	dto := SettingDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}
