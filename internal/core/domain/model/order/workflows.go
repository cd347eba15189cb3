package order

import (
	"errors"
	"strings"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"
)

// AddItem adds one unit of a menu item to a taken order. An active line with the same
// name gets its quantity bumped; otherwise a new line is appended at Preparing. The new
// unit always starts at Preparing.
func (o *Order) AddItem(menuItem menu.Item, at time.Time) error {
	if err := menuItem.Validate(); err != nil {
		return err
	}
	stage := o.status

	var item *Item
	for _, candidate := range o.items {
		if candidate.IsActive() && candidate.name == menuItem.Name() {
			item = candidate
			break
		}
	}

	if item != nil {
		item.setQuantity(item.quantity + 1)
		if item.status > Preparing {
			item.status = Preparing
		}
	} else {
		item = newItem(o.synthesizeItemID(menuItem.ID()), menuItem.Name(), menuItem.Price(), 1, Preparing)
		o.items = append(o.items, item)
	}
	o.units[UnitKey(item.id, item.quantity-1)] = Preparing

	o.record(HistoryEntry{At: at, Action: ActionAdded, Stage: stage, ItemName: item.name, Quantity: 1})
	o.recalculate()
	return nil
}

// ChangeItemQuantity moves the quantity of an active line by delta, never below zero.
// New units inherit the line's coarse stage; a decrease drops the highest unit indices.
// A line at quantity zero stays in the order and counts for nothing.
func (o *Order) ChangeItemQuantity(itemID string, delta int, at time.Time) error {
	item, err := o.activeItem(itemID)
	if err != nil {
		return err
	}

	before := item.quantity
	after := max(before+delta, 0)
	if after == before {
		return nil
	}
	stage := o.status

	item.setQuantity(after)
	if after > before {
		for i := before; i < after; i++ {
			o.units[UnitKey(item.id, i)] = item.status.unitDefault()
		}
		o.record(HistoryEntry{At: at, Action: ActionAdded, Stage: stage, ItemName: item.name, Quantity: after - before})
	} else {
		for i := after; i < before; i++ {
			delete(o.units, UnitKey(item.id, i))
		}
		o.record(HistoryEntry{At: at, Action: ActionRemoved, Stage: stage, ItemName: item.name, Quantity: before - after})
	}

	o.recalculate()
	return nil
}

// CancelItem flags a line as cancelled. While the order is at Billing a non-empty
// reason is required. The line stays listed but leaves the total, the unit map and
// the status aggregation.
func (o *Order) CancelItem(itemID, reason string, at time.Time) error {
	item, err := o.activeItem(itemID)
	if err != nil {
		return err
	}

	stage := o.status
	reason = strings.TrimSpace(reason)
	if stage == Billing && reason == "" {
		return ErrCancellationReasonRequired
	}

	for i := 0; i < item.quantity; i++ {
		delete(o.units, UnitKey(item.id, i))
	}
	item.cancel(at, stage)

	o.record(HistoryEntry{
		At:       at,
		Action:   ActionRemoved,
		Stage:    stage,
		ItemName: item.name,
		Quantity: item.quantity,
		Detail:   reason,
	})
	o.recalculate()
	return nil
}

// AdvanceUnit ticks off one unit from the preparing or delivering tab. The unit must
// currently be at the tab's stage.
//
// The line's coarse stage moves only when all of its units reach the new stage. When
// every unit of the order is at Billing the order flips to Billing and all active lines
// are forced to Billing as well.
func (o *Order) AdvanceUnit(itemID string, index int, view Stage) error {
	if view != Preparing && view != Delivering {
		return ErrViewNotAdvanceable
	}
	item, err := o.activeItem(itemID)
	if err != nil {
		return err
	}
	if index < 0 || index >= item.quantity {
		return errs.NewValueIsOutOfRangeError("unit index", index, 0, item.quantity-1)
	}

	key := UnitKey(item.id, index)
	current, ok := o.units[key]
	if !ok {
		current = item.status.unitDefault()
	}
	if current != view {
		return ErrUnitNotInView
	}

	next, err := current.Next()
	if err != nil {
		return err
	}
	o.units[key] = next
	o.recalculate()
	return nil
}

// AdvanceItem ticks off every unit of a line that sits at the tab's stage and returns
// how many moved.
func (o *Order) AdvanceItem(itemID string, view Stage) (int, error) {
	if view != Preparing && view != Delivering {
		return 0, ErrViewNotAdvanceable
	}
	item, err := o.activeItem(itemID)
	if err != nil {
		return 0, err
	}

	next, err := view.Next()
	if err != nil {
		return 0, err
	}

	advanced := 0
	for i, stage := range UnitStages(item, o.units) {
		if stage != view {
			continue
		}
		o.units[UnitKey(item.id, i)] = next
		advanced++
	}
	if advanced == 0 {
		return 0, ErrUnitNotInView
	}

	o.recalculate()
	return advanced, nil
}

// ApplyDiscount waives the full line value (price × quantity) of each selected item
// and returns the amount waived. Discounts accumulate across calls, the reason is
// replaced by the latest one. Cancelled lines and lines discounted before can be
// selected again.
func (o *Order) ApplyDiscount(itemIDs []string, reason string, at time.Time) (kernel.Money, error) {
	reason = strings.TrimSpace(reason)
	var validation []error
	if len(itemIDs) == 0 {
		validation = append(validation, ErrNoItemsSelected)
	}
	if reason == "" {
		validation = append(validation, ErrDiscountReasonRequired)
	}
	if len(validation) > 0 {
		return kernel.Money{}, errors.Join(validation...)
	}

	amount := kernel.ZeroMoney()
	names := make([]string, 0, len(itemIDs))
	seen := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		item, ok := o.Item(id)
		if !ok {
			return kernel.Money{}, errs.NewObjectNotFoundError("item", id)
		}
		amount = amount.Add(item.LineTotal())
		names = append(names, item.name)
	}

	o.discountAmount = o.discountAmount.Add(amount)
	o.discountReason = reason
	o.record(HistoryEntry{
		At:       at,
		Action:   ActionDiscountApplied,
		Stage:    o.status,
		ItemName: strings.Join(names, ", "),
		Quantity: len(names),
		Detail:   reason,
	})
	o.recalculate()
	return amount, nil
}

// ProcessPayment settles the order with method. Any order can be paid, whatever its
// current stage.
func (o *Order) ProcessPayment(method PaymentMethod, at time.Time) error {
	if err := method.Validate(); err != nil {
		return err
	}

	stage := o.status
	o.status = Paid
	o.settled = true
	o.paymentMethod = method
	o.record(HistoryEntry{At: at, Action: ActionPaymentProcessed, Stage: stage, Detail: string(method)})
	o.recalculate()
	return nil
}

// ActiveQuantity sums the quantities of active lines.
func (o *Order) ActiveQuantity() int {
	n := 0
	for _, item := range o.items {
		if item.IsActive() {
			n += item.quantity
		}
	}
	return n
}

// CancelledValue sums price × quantity over cancelled lines.
func (o *Order) CancelledValue() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		if item.cancelled {
			sum = sum.Add(item.LineTotal())
		}
	}
	return sum
}
