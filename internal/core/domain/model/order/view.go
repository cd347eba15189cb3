package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// View is one tab of the order pipeline.
type View string

const (
	ViewSummary    View = "summary"
	ViewPreparing  View = "preparing"
	ViewDelivering View = "delivering"
	ViewBilling    View = "billing"
	ViewPaid       View = "paid"
)

// ParseView defaults to ViewSummary for an empty string.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case "":
		return ViewSummary, nil
	case ViewSummary, ViewPreparing, ViewDelivering, ViewBilling, ViewPaid:
		return v, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("view", fmt.Errorf("%q is not a view", s))
	}
}

// Stage returns the unit stage a tab lists, if it lists one.
func (v View) Stage() (Stage, bool) {
	switch v {
	case ViewPreparing:
		return Preparing, true
	case ViewDelivering:
		return Delivering, true
	case ViewBilling:
		return Billing, true
	default:
		return Unknown, false
	}
}

// InView evaluates the tab predicate against the unit map, not the cached status, so
// an order is never listed in a tab its units do not justify.
func (o *Order) InView(v View) bool {
	paid := o.settled || DeriveStatus(o.items, o.units) == Paid
	switch v {
	case ViewSummary:
		return true
	case ViewPreparing:
		return !paid && AnyUnitAt(o.items, o.units, Preparing)
	case ViewDelivering:
		return !paid && AnyUnitAt(o.items, o.units, Delivering)
	case ViewBilling:
		return !paid && AllUnitsAt(o.items, o.units, Billing)
	case ViewPaid:
		return paid
	default:
		return false
	}
}

// FilterByView keeps the orders listed in v, preserving order.
func FilterByView(orders []*Order, v View) []*Order {
	filtered := make([]*Order, 0, len(orders))
	for _, o := range orders {
		if o.InView(v) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
