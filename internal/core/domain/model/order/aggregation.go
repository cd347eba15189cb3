package order

import "pos/internal/core/domain/model/kernel"

// UnitStages returns the stage of every unit of item, in index order. Units missing
// from the map fall back to the line's coarse stage.
func UnitStages(item *Item, units map[string]Stage) []Stage {
	stages := make([]Stage, 0, item.quantity)
	for i := 0; i < item.quantity; i++ {
		stage, ok := units[UnitKey(item.id, i)]
		if !ok {
			stage = item.status.unitDefault()
		}
		stages = append(stages, stage)
	}
	return stages
}

// DeriveStatus computes the order status from the unit stages of its active items.
// The rules are checked in order:
//
//  1. every unit of every active item is at Billing (and there is at least one unit) -> Billing
//  2. any unit is at Delivering or Billing -> Delivering
//  3. any unit is at Preparing -> Preparing
//  4. otherwise -> Paid
//
// A mix of fully billed and still preparing items therefore reports Delivering.
func DeriveStatus(items []*Item, units map[string]Stage) Stage {
	var total, preparing, delivering, billing int
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		for _, stage := range UnitStages(item, units) {
			total++
			switch stage {
			case Preparing:
				preparing++
			case Delivering:
				delivering++
			case Billing:
				billing++
			}
		}
	}

	switch {
	case total > 0 && billing == total:
		return Billing
	case delivering+billing > 0:
		return Delivering
	case preparing > 0:
		return Preparing
	default:
		return Paid
	}
}

// AllUnitsAt reports whether the active items hold at least one unit and every one of
// them is at stage.
func AllUnitsAt(items []*Item, units map[string]Stage, stage Stage) bool {
	seen := false
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		for _, s := range UnitStages(item, units) {
			if s != stage {
				return false
			}
			seen = true
		}
	}
	return seen
}

// AnyUnitAt reports whether some unit of an active item is at stage.
func AnyUnitAt(items []*Item, units map[string]Stage, stage Stage) bool {
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		for _, s := range UnitStages(item, units) {
			if s == stage {
				return true
			}
		}
	}
	return false
}

// Subtotal sums price × quantity over active items.
func Subtotal(items []*Item) kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range items {
		if !item.IsActive() || item.quantity <= 0 {
			continue
		}
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func unitsAgree(item *Item, units map[string]Stage, stage Stage) bool {
	for _, s := range UnitStages(item, units) {
		if s != stage {
			return false
		}
	}
	return item.quantity > 0
}
