package queries

import (
	"context"

	"pos/internal/core/domain/model/menu"
)

// GetEditSheetQueryHandler lists every menu item with the quantity the order holds of
// it, matching lines by identifier and then by name.
type GetEditSheetQueryHandler struct {
	orders OrderReader
	menu   MenuReader
}

func NewGetEditSheetQueryHandler(orders OrderReader, menu MenuReader) GetEditSheetQueryHandler {
	return GetEditSheetQueryHandler{orders: orders, menu: menu}
}

func (h GetEditSheetQueryHandler) Handle(ctx context.Context, query GetEditSheetQuery) ([]EditLineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := findOrder(ctx, h.orders, query.BusinessID(), query.OrderID())
	if err != nil {
		return nil, err
	}

	items, err := h.menu.GetAll(ctx, query.BusinessID())
	if err != nil {
		return nil, err
	}

	sheet := o.EditSheet(menu.NewCatalog(items))
	lines := make([]EditLineResponse, 0, len(sheet))
	for _, line := range sheet {
		lines = append(lines, EditLineResponse{
			MenuItemID: line.Item.ID(),
			Name:       line.Item.Name(),
			Price:      line.Item.Price(),
			Category:   line.Item.Category(),
			Quantity:   line.Quantity,
		})
	}

	return lines, nil
}
