package menurepo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"
)

// MemoryMenuRepository keeps menus in process memory; used with the memory and redis
// storage drivers.
type MemoryMenuRepository struct {
	mu    sync.RWMutex
	menus map[business.ID]map[string]menu.Item
}

func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{menus: make(map[business.ID]map[string]menu.Item)}
}

func (r *MemoryMenuRepository) Add(_ context.Context, businessID business.ID, item menu.Item) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.menus[businessID]
	if !ok {
		items = make(map[string]menu.Item)
		r.menus[businessID] = items
	}
	items[item.ID()] = item
	return nil
}

func (r *MemoryMenuRepository) Delete(_ context.Context, businessID business.ID, itemID string) error {
	if err := businessID.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.menus[businessID][itemID]; !ok {
		return errs.NewObjectNotFoundError("menu item", itemID)
	}
	delete(r.menus[businessID], itemID)
	return nil
}

func (r *MemoryMenuRepository) GetAll(_ context.Context, businessID business.ID) ([]menu.Item, error) {
	if err := businessID.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]menu.Item, 0, len(r.menus[businessID]))
	for _, item := range r.menus[businessID] {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b menu.Item) int {
		return cmp.Or(cmp.Compare(a.Category(), b.Category()), cmp.Compare(a.Name(), b.Name()))
	})
	return items, nil
}
