package menurepo

import (
	"context"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// AutoMigrate creates or updates the menu_items table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&MenuItemDTO{})
}

func (r *GormMenuRepository) Add(ctx context.Context, businessID business.ID, item menu.Item) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(businessID, item)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "business_id"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "category"}),
	}).Create(&dto).Error
}

func (r *GormMenuRepository) Delete(ctx context.Context, businessID business.ID, itemID string) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("business_id = ? AND id = ?", businessID.String(), itemID).
		Delete(&MenuItemDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menu item", itemID)
	}
	return nil
}

func (r *GormMenuRepository) GetAll(ctx context.Context, businessID business.ID) ([]menu.Item, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID.String()).
		Order("category, name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
