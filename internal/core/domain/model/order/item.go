package order

import (
	"fmt"
	"strings"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// Item is one line of an order. It snapshots the menu item's name and price at the
// time it was added; later menu price changes do not affect it.
//
// An item shares its identifier with the menu entry it came from unless that
// identifier was already taken inside the order, in which case a synthesized one is
// used (see synthesizeItemID).
type Item struct {
	id       string
	name     string
	price    kernel.Money
	quantity int

	// status is the coarse stage of the line. It only moves forward when all units agree.
	status Stage

	cancelled      bool
	cancelledAt    time.Time
	cancelledStage Stage

	// originalQuantity is set the first time the quantity changes after creation.
	originalQuantity *int
}

// ItemState is the flat representation of an Item used for persistence and restore.
type ItemState struct {
	ID               string
	Name             string
	Price            kernel.Money
	Quantity         int
	Status           Stage
	Cancelled        bool
	CancelledAt      *time.Time
	CancelledStage   Stage
	OriginalQuantity *int
}

func newItem(id, name string, price kernel.Money, quantity int, status Stage) *Item {
	return &Item{
		id:       id,
		name:     name,
		price:    price,
		quantity: quantity,
		status:   status,
	}
}

func restoreItem(state ItemState) (*Item, error) {
	if strings.TrimSpace(state.ID) == "" {
		return nil, errs.NewValueIsRequiredError("item id")
	}
	if state.Quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"item quantity", fmt.Errorf("item %s has negative quantity %d", state.ID, state.Quantity),
		)
	}
	if err := state.Status.Validate(); err != nil {
		return nil, fmt.Errorf("item %s: %w", state.ID, err)
	}

	item := newItem(state.ID, state.Name, state.Price, state.Quantity, state.Status)
	if state.Cancelled {
		item.cancelled = true
		if state.CancelledAt != nil {
			item.cancelledAt = *state.CancelledAt
		}
		item.cancelledStage = state.CancelledStage
	}
	if state.OriginalQuantity != nil {
		q := *state.OriginalQuantity
		item.originalQuantity = &q
	}
	return item, nil
}

// ID returns the line identifier.
func (i *Item) ID() string {
	return i.id
}

// Name returns the menu item name captured when the line was added.
func (i *Item) Name() string {
	return i.name
}

// Price returns the unit price captured when the line was added.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns how many units the line holds. Zero is a valid, inert quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the coarse stage of the line.
func (i *Item) Status() Stage {
	return i.status
}

// IsCancelled reports whether the line was cancelled. Cancelled lines stay in the
// order for display but no longer count toward total or status.
func (i *Item) IsCancelled() bool {
	return i.cancelled
}

// CancelledAt returns the cancellation time and whether the line is cancelled.
func (i *Item) CancelledAt() (time.Time, bool) {
	return i.cancelledAt, i.cancelled
}

// CancelledStage returns the order stage at the moment of cancellation.
func (i *Item) CancelledStage() Stage {
	return i.cancelledStage
}

// OriginalQuantity returns the quantity the line had before its first change.
func (i *Item) OriginalQuantity() (int, bool) {
	if i.originalQuantity == nil {
		return 0, false
	}
	return *i.originalQuantity, true
}

// LineTotal is price × quantity regardless of cancellation.
func (i *Item) LineTotal() kernel.Money {
	return i.price.Mul(i.quantity)
}

// IsActive reports whether the line takes part in totals and status aggregation.
func (i *Item) IsActive() bool {
	return !i.cancelled
}

// State returns a detached copy of the line.
func (i *Item) State() ItemState {
	state := ItemState{
		ID:             i.id,
		Name:           i.name,
		Price:          i.price,
		Quantity:       i.quantity,
		Status:         i.status,
		Cancelled:      i.cancelled,
		CancelledStage: i.cancelledStage,
	}
	if i.cancelled {
		at := i.cancelledAt
		state.CancelledAt = &at
	}
	if i.originalQuantity != nil {
		q := *i.originalQuantity
		state.OriginalQuantity = &q
	}
	return state
}

func (i *Item) cancel(at time.Time, stage Stage) {
	i.cancelled = true
	i.cancelledAt = at
	i.cancelledStage = stage
}

func (i *Item) setQuantity(quantity int) {
	if i.originalQuantity == nil {
		original := i.quantity
		i.originalQuantity = &original
	}
	i.quantity = quantity
}

// UnitKey builds the key of one unit in the unit stage map.
func UnitKey(itemID string, index int) string {
	return fmt.Sprintf("%s-%d", itemID, index)
}
