package kvstore

import (
	"context"
	"errors"
	"time"

	"pos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryDTO is one row of the key-value table.
type EntryDTO struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:255"`
	Value     []byte `gorm:"column:entry_value"`
	UpdatedAt time.Time
}

// TableName overrides gorm's default naming.
func (EntryDTO) TableName() string {
	return "kv_entries"
}

// GormStore keeps values in the kv_entries table of a postgres or sqlite database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the kv_entries table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&EntryDTO{})
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, errs.NewValueIsRequiredError("key")
	}

	var dto EntryDTO
	if err := s.db.WithContext(ctx).First(&dto, "entry_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return dto.Value, true, nil
}

// Set upserts the row for key.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	dto := EntryDTO{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
	}).Create(&dto).Error
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("entry_key = ?", key).Delete(&EntryDTO{}).Error
}
