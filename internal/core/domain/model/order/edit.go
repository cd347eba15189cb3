package order

import (
	"fmt"
	"time"

	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"
)

// EditLine is one row of the full edit sheet: a menu item and the quantity the order
// currently holds of it.
type EditLine struct {
	Item     menu.Item
	Quantity int
}

// EditSheet lists every menu item with its quantity pre-seeded from the active lines.
// Lines are matched to menu items by identifier first, then by name, so legacy lines
// whose identifier drifted from the menu still count.
func (o *Order) EditSheet(catalog menu.Catalog) []EditLine {
	seeded := o.seededQuantities(catalog)
	items := catalog.Items()
	sheet := make([]EditLine, 0, len(items))
	for _, item := range items {
		sheet = append(sheet, EditLine{Item: item, Quantity: seeded[item.ID()]})
	}
	return sheet
}

func (o *Order) seededQuantities(catalog menu.Catalog) map[string]int {
	seeded := make(map[string]int)
	for _, item := range o.items {
		if !item.IsActive() {
			continue
		}
		if m, ok := catalog.Match(item.id, item.name); ok {
			seeded[m.ID()] += item.quantity
		}
	}
	return seeded
}

// ApplyEdit confirms the edit sheet. quantities maps menu item identifiers to the
// wanted quantity; menu items left out keep their current quantity.
//
// Lowered quantities split the difference off into a new cancelled line stamped with
// the current order stage, leaving the rest active. A line edited down to zero is
// cancelled as a whole. Raised quantities grow the first matching line and menu items
// the order did not hold yet are appended at Preparing.
//
// The unit map is rebuilt afterwards: existing units keep their stage, new units of
// existing lines take the line's pre-edit coarse stage and new lines start at Preparing.
// On a paid order new units of existing lines start at Billing.
func (o *Order) ApplyEdit(catalog menu.Catalog, quantities map[string]int, at time.Time) error {
	for id, q := range quantities {
		if q < 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s: %d must not be negative", id, q))
		}
		if _, ok := catalog.Get(id); !ok {
			return errs.NewObjectNotFoundError("menu item", id)
		}
	}

	stage := o.status
	preEdit := make(map[*Item]Stage, len(o.items))
	remaining := o.seededQuantities(catalog)
	for id, q := range quantities {
		remaining[id] = q
	}

	changed := false
	firstLine := make(map[string]*Item)
	result := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		preEdit[item] = item.status
		result = append(result, item)
		if !item.IsActive() {
			continue
		}
		m, ok := catalog.Match(item.id, item.name)
		if !ok {
			continue
		}
		if _, seen := firstLine[m.ID()]; !seen {
			firstLine[m.ID()] = item
		}

		keep := min(item.quantity, remaining[m.ID()])
		remaining[m.ID()] -= keep
		if keep == item.quantity {
			continue
		}

		changed = true
		removed := item.quantity - keep
		if keep == 0 {
			item.cancel(at, stage)
		} else {
			split := newItem(o.synthesizeItemID(item.id), item.name, item.price, removed, item.status)
			split.cancel(at, stage)
			item.setQuantity(keep)
			result = append(result, split)
		}
		o.record(HistoryEntry{At: at, Action: ActionRemoved, Stage: stage, ItemName: item.name, Quantity: removed})
	}
	o.items = result

	for _, m := range catalog.Items() {
		extra := remaining[m.ID()]
		if extra <= 0 {
			continue
		}
		changed = true
		if line, ok := firstLine[m.ID()]; ok && line.IsActive() {
			line.setQuantity(line.quantity + extra)
		} else {
			line := newItem(o.synthesizeItemID(m.ID()), m.Name(), m.Price(), extra, Preparing)
			o.items = append(o.items, line)
		}
		o.record(HistoryEntry{At: at, Action: ActionAdded, Stage: stage, ItemName: m.Name(), Quantity: extra})
	}

	if !changed {
		return nil
	}

	o.rebuildUnits(preEdit)
	o.recalculate()
	return nil
}

func (o *Order) rebuildUnits(preEdit map[*Item]Stage) {
	units := make(map[string]Stage)
	for _, item := range o.items {
		if !item.IsActive() {
			continue
		}
		for i := 0; i < item.quantity; i++ {
			key := UnitKey(item.id, i)
			if stage, ok := o.units[key]; ok {
				units[key] = stage
				continue
			}
			units[key] = o.newUnitStage(item, preEdit)
		}
	}
	o.units = units
}

func (o *Order) newUnitStage(item *Item, preEdit map[*Item]Stage) Stage {
	stage, existed := preEdit[item]
	switch {
	case !existed:
		return Preparing
	case o.settled:
		return Billing
	default:
		return stage.unitDefault()
	}
}
