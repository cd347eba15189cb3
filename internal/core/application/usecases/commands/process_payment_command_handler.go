package commands

import (
	"context"
	"time"

	"pos/internal/core/domain/model/order"
)

// ProcessPaymentCommandHandler closes orders at the till. Payment is accepted at any
// stage; kitchen progress is not checked.
type ProcessPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

func NewProcessPaymentCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, h.notifier, cmd.BusinessID(), cmd.OrderID(), ActionPaymentProcessed,
		func(o *order.Order) error {
			return o.ProcessPayment(cmd.Method(), time.Now().UTC())
		})
}
