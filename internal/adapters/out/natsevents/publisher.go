// Package natsevents publishes order and sales events as JSON messages on NATS.
package natsevents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"pos/internal/core/ports"

	"github.com/nats-io/nats.go"
)

const (
	DefaultOrderChangedSubject  = "pos.orders.changed"
	DefaultSalesSnapshotSubject = "pos.sales.snapshot"
)

// OrderChangedMessage is the wire form of ports.OrderChanged.
type OrderChangedMessage struct {
	BusinessID string    `json:"business_id"`
	OrderID    string    `json:"order_id"`
	Number     int       `json:"number"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SalesSnapshotMessage is the wire form of ports.SalesSnapshot.
type SalesSnapshotMessage struct {
	BusinessID     string            `json:"business_id"`
	TakenAt        time.Time         `json:"taken_at"`
	Orders         int               `json:"orders"`
	SettledOrders  int               `json:"settled_orders"`
	Revenue        string            `json:"revenue"`
	AverageTicket  string            `json:"average_ticket"`
	Discounts      string            `json:"discounts"`
	CancelledValue string            `json:"cancelled_value"`
	Diners         int               `json:"diners"`
	ByStatus       map[string]int    `json:"by_status"`
	ByMethod       map[string]string `json:"by_method"`
}

type Config struct {
	URL                  string
	OrderChangedSubject  string
	SalesSnapshotSubject string
}

// Publisher implements ports.EventPublisher over a NATS connection.
type Publisher struct {
	conn   *nats.Conn
	config Config
	logger *slog.Logger
}

// Connect dials NATS and keeps reconnecting in the background for the lifetime of
// the publisher.
func Connect(config Config, logger *slog.Logger) (*Publisher, error) {
	if config.OrderChangedSubject == "" {
		config.OrderChangedSubject = DefaultOrderChangedSubject
	}
	if config.SalesSnapshotSubject == "" {
		config.SalesSnapshotSubject = DefaultSalesSnapshotSubject
	}
	logger = logger.With("component", "natsevents")

	conn, err := nats.Connect(config.URL,
		nats.Name("pos"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("disconnected from NATS", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("reconnected to NATS", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{conn: conn, config: config, logger: logger}, nil
}

func (p *Publisher) PublishOrderChanged(_ context.Context, event ports.OrderChanged) error {
	data, err := json.Marshal(newOrderChangedMessage(event))
	if err != nil {
		return err
	}
	return p.conn.Publish(p.config.OrderChangedSubject, data)
}

func (p *Publisher) PublishSalesSnapshot(_ context.Context, snapshot ports.SalesSnapshot) error {
	data, err := json.Marshal(newSalesSnapshotMessage(snapshot))
	if err != nil {
		return err
	}
	return p.conn.Publish(p.config.SalesSnapshotSubject, data)
}

// Close flushes pending messages and closes the connection.
func (p *Publisher) Close() error {
	return p.conn.Drain()
}

func newOrderChangedMessage(event ports.OrderChanged) OrderChangedMessage {
	return OrderChangedMessage{
		BusinessID: event.BusinessID.String(),
		OrderID:    event.OrderID.String(),
		Number:     event.Number,
		Status:     event.Status.String(),
		Total:      event.Total.String(),
		Action:     event.Action,
		OccurredAt: event.OccurredAt,
	}
}

func newSalesSnapshotMessage(snapshot ports.SalesSnapshot) SalesSnapshotMessage {
	s := snapshot.Summary
	byStatus := make(map[string]int, len(s.ByStatus))
	for stage, n := range s.ByStatus {
		byStatus[stage.String()] = n
	}
	byMethod := make(map[string]string, len(s.ByMethod))
	for method, amount := range s.ByMethod {
		byMethod[string(method)] = amount.String()
	}

	return SalesSnapshotMessage{
		BusinessID:     snapshot.BusinessID.String(),
		TakenAt:        snapshot.TakenAt,
		Orders:         s.Orders,
		SettledOrders:  s.SettledOrders,
		Revenue:        s.Revenue.String(),
		AverageTicket:  s.AverageTicket.String(),
		Discounts:      s.Discounts.String(),
		CancelledValue: s.CancelledValue.String(),
		Diners:         s.Diners,
		ByStatus:       byStatus,
		ByMethod:       byMethod,
	}
}
