// Package menu describes the menu entries orders snapshot their lines from.
// Menu items are owned by the menu-management collaborator; orders copy the
// name and price at add-time and never follow later price changes.
package menu

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Item is a sellable menu entry.
type Item struct {
	id       string
	name     string
	price    kernel.Money
	category string

	guard guard.ConstructorGuard
}

// NewItem validates and builds a menu item. Price may be zero (complimentary items)
// but never negative.
func NewItem(id, name string, price kernel.Money, category string) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard(), category: strings.TrimSpace(category)}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() string { return i.id }
func (i Item) Name() string { return i.name }
func (i Item) Price() kernel.Money { return i.price }
func (i Item) Category() string { return i.category }

func (i *Item) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("menu item price")
	}
	i.price = price
	return nil
}
