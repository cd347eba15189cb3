package queries

import (
	"context"

	"pos/internal/core/domain/model/menu"
)

type ListMenuQueryHandler struct {
	menu MenuReader
}

func NewListMenuQueryHandler(menu MenuReader) ListMenuQueryHandler {
	return ListMenuQueryHandler{menu: menu}
}

// Handle returns the menu ordered by category and name.
func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menu.GetAll(ctx, query.BusinessID())
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewMenuItemResponse(item))
	}
	return responses, nil
}

func NewMenuItemResponse(item menu.Item) MenuItemResponse {
	return MenuItemResponse{
		ID:       item.ID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Category: item.Category(),
	}
}
