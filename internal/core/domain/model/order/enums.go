package order

import (
	"fmt"

	"pos/internal/pkg/errs"
)

// ServiceType says where the order is consumed.
type ServiceType string

const (
	OnSite   ServiceType = "on_site"
	Takeaway ServiceType = "takeaway"
	Delivery ServiceType = "delivery"
)

func (t ServiceType) Validate() error {
	switch t {
	case OnSite, Takeaway, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("service type", fmt.Errorf("%q is not a service type", string(t)))
	}
}

// PaymentMethod is the closed set of tenders accepted at the till.
type PaymentMethod string

const (
	Card     PaymentMethod = "card"
	Cash     PaymentMethod = "cash"
	Transfer PaymentMethod = "transfer"
)

// ParsePaymentMethod returns ErrPaymentMethodRequired for "" and ErrPaymentMethodInvalid
// for anything outside {card, cash, transfer}.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case Card, Cash, Transfer:
		return nil
	case "":
		return ErrPaymentMethodRequired
	default:
		return ErrPaymentMethodInvalid
	}
}

// Action classifies an edit history entry.
type Action string

const (
	ActionAdded            Action = "added"
	ActionRemoved          Action = "removed"
	ActionDiscountApplied  Action = "discount_applied"
	ActionPaymentProcessed Action = "payment_processed"
)

func (a Action) Validate() error {
	switch a {
	case ActionAdded, ActionRemoved, ActionDiscountApplied, ActionPaymentProcessed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("history action", fmt.Errorf("%q is not an action", string(a)))
	}
}
