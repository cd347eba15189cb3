package order

import (
	"errors"

	"pos/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrCustomerNameRequired       = errs.NewValueIsRequiredError("customer name")
	ErrNoItemsSelected            = errs.NewValueIsRequiredError("items")
	ErrDiscountReasonRequired     = errs.NewValueIsRequiredError("discount reason")
	ErrCancellationReasonRequired = errs.NewValueIsRequiredError("cancellation reason")
	ErrPaymentMethodRequired      = errs.NewValueIsRequiredError("payment method")
	ErrPaymentMethodInvalid       = errs.NewValueIsInvalidErrorWithCause(
		"payment method", errors.New("accepted methods are card, cash and transfer"),
	)

	// ErrItemAlreadyCancelled is returned when cancelling or editing a cancelled line.
	// Cancellation is irreversible.
	ErrItemAlreadyCancelled = errs.NewValueIsInvalidErrorWithCause("item", errors.New("item is cancelled"))

	// ErrUnitNotInView is returned when a unit is ticked off from a tab that does not
	// match its current stage.
	ErrUnitNotInView = errs.NewValueIsInvalidErrorWithCause("unit", errors.New("unit is not at the viewed stage"))

	// ErrViewNotAdvanceable is returned for tabs other than preparing and delivering.
	ErrViewNotAdvanceable = errs.NewValueIsInvalidErrorWithCause(
		"view", errors.New("units can only be advanced from the preparing and delivering tabs"),
	)
)
