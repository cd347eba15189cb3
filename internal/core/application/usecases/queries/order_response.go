package queries

import (
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID             kernel.UUID       `json:"id"`
	Number         int               `json:"number"`
	CustomerName   string            `json:"customerName"`
	Status         string            `json:"status"`
	ServiceType    string            `json:"serviceType"`
	Diners         int               `json:"diners"`
	CreatedAt      time.Time         `json:"createdAt"`
	Total          kernel.Money      `json:"total"`
	DiscountAmount *kernel.Money     `json:"discountAmount,omitempty"`
	DiscountReason string            `json:"discountReason,omitempty"`
	PaymentMethod  string            `json:"paymentMethod,omitempty"`
	Edited         bool              `json:"edited"`
	Items          []ItemResponse    `json:"items"`
	UnitStatuses   map[string]string `json:"unitStatuses"`
	History        []HistoryResponse `json:"editHistory"`
}

// ItemResponse is the read model of an order line. Units lists the stage of every
// unit of an active line by index.
type ItemResponse struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Price            kernel.Money `json:"price"`
	Quantity         int          `json:"quantity"`
	LineTotal        kernel.Money `json:"lineTotal"`
	Status           string       `json:"status"`
	Units            []string     `json:"units"`
	Cancelled        bool         `json:"cancelled"`
	CancelledAt      *time.Time   `json:"cancelledAt,omitempty"`
	CancelledStage   string       `json:"cancelledStage,omitempty"`
	OriginalQuantity *int         `json:"originalQuantity,omitempty"`
}

type HistoryResponse struct {
	At       time.Time `json:"timestamp"`
	Action   string    `json:"action"`
	Stage    string    `json:"stage"`
	ItemName string    `json:"itemName,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
	Detail   string    `json:"details,omitempty"`
}

// NewOrderResponse projects o into its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	units := o.UnitStatuses()
	resp := OrderResponse{
		ID:           o.ID(),
		Number:       o.Number(),
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		ServiceType:  string(o.ServiceType()),
		Diners:       o.Diners(),
		CreatedAt:    o.CreatedAt(),
		Total:        o.Total(),
		Edited:       o.IsEdited(),
		Items:        make([]ItemResponse, 0, len(o.Items())),
		UnitStatuses: make(map[string]string, len(units)),
		History:      make([]HistoryResponse, 0, len(o.History())),
	}

	if o.HasDiscount() {
		amount := o.DiscountAmount()
		resp.DiscountAmount = &amount
		resp.DiscountReason = o.DiscountReason()
	}
	if method, ok := o.PaymentMethod(); ok {
		resp.PaymentMethod = string(method)
	}

	for key, stage := range units {
		resp.UnitStatuses[key] = stage.String()
	}

	for _, item := range o.Items() {
		resp.Items = append(resp.Items, newItemResponse(item, units))
	}

	for _, entry := range o.History() {
		resp.History = append(resp.History, HistoryResponse{
			At:       entry.At,
			Action:   string(entry.Action),
			Stage:    entry.Stage.String(),
			ItemName: entry.ItemName,
			Quantity: entry.Quantity,
			Detail:   entry.Detail,
		})
	}

	return resp
}

func newItemResponse(item *order.Item, units map[string]order.Stage) ItemResponse {
	resp := ItemResponse{
		ID:        item.ID(),
		Name:      item.Name(),
		Price:     item.Price(),
		Quantity:  item.Quantity(),
		LineTotal: item.LineTotal(),
		Status:    item.Status().String(),
		Units:     []string{},
		Cancelled: item.IsCancelled(),
	}

	if item.IsCancelled() {
		if at, ok := item.CancelledAt(); ok {
			resp.CancelledAt = &at
		}
		resp.CancelledStage = item.CancelledStage().String()
	} else {
		for _, stage := range order.UnitStages(item, units) {
			resp.Units = append(resp.Units, stage.String())
		}
	}

	if original, ok := item.OriginalQuantity(); ok {
		resp.OriginalQuantity = &original
	}

	return resp
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, NewOrderResponse(o))
	}
	return responses
}
