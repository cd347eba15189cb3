package commands

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"
)

// Actions carried by OrderChanged events.
const (
	ActionOrderCreated     = "order_created"
	ActionItemAdded        = "item_added"
	ActionQuantityChanged  = "quantity_changed"
	ActionItemCancelled    = "item_cancelled"
	ActionUnitAdvanced     = "unit_advanced"
	ActionItemAdvanced     = "item_advanced"
	ActionDiscountApplied  = "discount_applied"
	ActionPaymentProcessed = "payment_processed"
	ActionOrderEdited      = "order_edited"
)

// Notifier publishes an OrderChanged event for every order a command committed.
// Publishing happens after the commit, so a failure is logged and never undoes the
// change. The zero value publishes nothing.
type Notifier struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewNotifier(publisher ports.EventPublisher, logger *slog.Logger) Notifier {
	return Notifier{publisher: publisher, logger: logger.With("component", "notifier")}
}

func (n Notifier) ordersChanged(ctx context.Context, businessID business.ID, action string, orders []*order.Order) {
	if n.publisher == nil {
		return
	}

	now := time.Now().UTC()
	for _, o := range orders {
		event := ports.OrderChanged{
			BusinessID: businessID,
			OrderID:    o.ID(),
			Number:     o.Number(),
			Status:     o.Status(),
			Total:      o.Total(),
			Action:     action,
			OccurredAt: now,
		}
		if err := n.publisher.PublishOrderChanged(ctx, event); err != nil {
			n.logger.WarnContext(ctx, "failed to publish order change",
				"business", businessID, "order", o.ID(), "action", action, "error", err)
		}
	}
}
