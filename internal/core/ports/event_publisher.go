package ports

import (
	"context"
	"time"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderChanged is published after a workflow committed a change to an order.
type OrderChanged struct {
	BusinessID business.ID
	OrderID    kernel.UUID
	Number     int
	Status     order.Stage
	Total      kernel.Money
	Action     string
	OccurredAt time.Time
}

// SalesSnapshot is published by the periodic sales job.
type SalesSnapshot struct {
	BusinessID business.ID
	TakenAt    time.Time
	Summary    order.SalesSummary
}

// EventPublisher delivers domain events to interested parties outside the process.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChanged) error
	PublishSalesSnapshot(ctx context.Context, snapshot SalesSnapshot) error
}
