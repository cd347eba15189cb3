// Package menurepo stores the menu of each business.
package menurepo

import (
	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"

	"github.com/shopspring/decimal"
)

// MenuItemDTO is one row of the menu_items table.
type MenuItemDTO struct {
	BusinessID string          `gorm:"primaryKey;size:64"`
	ID         string          `gorm:"primaryKey;size:128"`
	Name       string          `gorm:"size:255;not null"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Category   string          `gorm:"size:128;index"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(businessID business.ID, item menu.Item) MenuItemDTO {
	return MenuItemDTO{
		BusinessID: businessID.String(),
		ID:         item.ID(),
		Name:       item.Name(),
		Price:      item.Price().Decimal(),
		Category:   item.Category(),
	}
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	return menu.NewItem(dto.ID, dto.Name, kernel.NewMoney(dto.Price), dto.Category)
}
