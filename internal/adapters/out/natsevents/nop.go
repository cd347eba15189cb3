package natsevents

import (
	"context"
	"log/slog"

	"pos/internal/core/ports"
)

// NopPublisher drops events. It is used when NATS_URL is not configured.
type NopPublisher struct {
	logger *slog.Logger
}

func NewNopPublisher(logger *slog.Logger) *NopPublisher {
	return &NopPublisher{logger: logger.With("component", "natsevents")}
}

func (p *NopPublisher) PublishOrderChanged(_ context.Context, event ports.OrderChanged) error {
	p.logger.Debug("order changed", "business", event.BusinessID, "order", event.OrderID, "action", event.Action)
	return nil
}

func (p *NopPublisher) PublishSalesSnapshot(_ context.Context, snapshot ports.SalesSnapshot) error {
	p.logger.Debug("sales snapshot", "business", snapshot.BusinessID, "orders", snapshot.Summary.Orders)
	return nil
}

func (p *NopPublisher) Close() error {
	return nil
}
