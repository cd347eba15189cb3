// Package orderstore persists the order collection of each business as one JSON
// document in a ports.KeyValueStore and exposes it through a unit of work.
package orderstore

import (
	"fmt"
	"strings"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// legacyIDNamespace derives stable order identifiers for records written before
// identifiers were UUIDs.
var legacyIDNamespace = uuid.MustParse("6f1c1f55-2b8e-4f43-9d53-2f0c8c1e7a10")

// deadStatuses maps stage names used by earlier versions onto current stages.
var deadStatuses = map[string]string{
	"pending":   "preparing",
	"ready":     "delivering",
	"delivered": "billing",
	"served":    "billing",
	"completed": "paid",
	"closed":    "paid",
}

// deadPaymentMethods maps tender names written by earlier versions onto current ones.
var deadPaymentMethods = map[string]order.PaymentMethod{
	"efectivo":      order.Cash,
	"tarjeta":       order.Card,
	"credit_card":   order.Card,
	"debit_card":    order.Card,
	"transferencia": order.Transfer,
	"bank_transfer": order.Transfer,
}

// deadServiceTypes maps service type names written by earlier versions onto current ones.
var deadServiceTypes = map[string]order.ServiceType{
	"dine_in":     order.OnSite,
	"dine-in":     order.OnSite,
	"on-site":     order.OnSite,
	"local":       order.OnSite,
	"take_away":   order.Takeaway,
	"take-away":   order.Takeaway,
	"para_llevar": order.Takeaway,
	"domicilio":   order.Delivery,
}

// OrderDTO is the persisted shape of an order.
type OrderDTO struct {
	ID             string            `json:"id"`
	Number         int               `json:"number"`
	CustomerName   string            `json:"customerName"`
	Items          []ItemDTO         `json:"items"`
	Status         string            `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	ServiceType    string            `json:"serviceType,omitempty"`
	Diners         int               `json:"diners"`
	Total          kernel.Money      `json:"total"`
	DiscountAmount *kernel.Money     `json:"discountAmount,omitempty"`
	DiscountReason string            `json:"discountReason,omitempty"`
	PaymentMethod  string            `json:"paymentMethod,omitempty"`
	Settled        *bool             `json:"settled,omitempty"`
	UnitStatuses   map[string]string `json:"unitStatuses,omitempty"`
	Edited         bool              `json:"edited,omitempty"`
	EditHistory    []HistoryDTO      `json:"editHistory,omitempty"`
}

// ItemDTO is the persisted shape of an order line.
type ItemDTO struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Price            kernel.Money `json:"price"`
	Quantity         int          `json:"quantity"`
	Status           string       `json:"status"`
	Cancelled        bool         `json:"cancelled,omitempty"`
	CancelledAt      *time.Time   `json:"cancelledAt,omitempty"`
	CancelledStage   string       `json:"cancelledStage,omitempty"`
	OriginalQuantity *int         `json:"originalQuantity,omitempty"`
}

// HistoryDTO is the persisted shape of an edit history entry.
type HistoryDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Stage     string    `json:"stage"`
	ItemName  string    `json:"itemName,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Details   string    `json:"details,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	state := o.State()

	items := make([]ItemDTO, 0, len(state.Items))
	for _, item := range state.Items {
		dto := ItemDTO{
			ID:               item.ID,
			Name:             item.Name,
			Price:            item.Price,
			Quantity:         item.Quantity,
			Status:           item.Status.String(),
			Cancelled:        item.Cancelled,
			CancelledAt:      item.CancelledAt,
			OriginalQuantity: item.OriginalQuantity,
		}
		if item.Cancelled {
			dto.CancelledStage = item.CancelledStage.String()
		}
		items = append(items, dto)
	}

	units := make(map[string]string, len(state.UnitStatuses))
	for key, stage := range state.UnitStatuses {
		units[key] = stage.String()
	}

	history := make([]HistoryDTO, 0, len(state.History))
	for _, entry := range state.History {
		history = append(history, HistoryDTO{
			Timestamp: entry.At,
			Action:    string(entry.Action),
			Stage:     entry.Stage.String(),
			ItemName:  entry.ItemName,
			Quantity:  entry.Quantity,
			Details:   entry.Detail,
		})
	}

	dto := OrderDTO{
		ID:             state.ID.String(),
		Number:         state.Number,
		CustomerName:   state.CustomerName,
		Items:          items,
		Status:         state.Status.String(),
		CreatedAt:      state.CreatedAt,
		ServiceType:    string(state.ServiceType),
		Diners:         state.Diners,
		Total:          state.Total,
		DiscountReason: state.DiscountReason,
		PaymentMethod:  string(state.PaymentMethod),
		Settled:        &state.Settled,
		UnitStatuses:   units,
		Edited:         state.Edited,
		EditHistory:    history,
	}
	if o.HasDiscount() {
		amount := state.DiscountAmount
		dto.DiscountAmount = &amount
	}
	return dto
}

// toDomain restores an order, rewriting dead stage, tender and service type names on
// the way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := parseOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := parseStage(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.ItemState, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemStatus, err := parseStage(item.Status)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", item.ID, err)
		}
		state := order.ItemState{
			ID:               item.ID,
			Name:             item.Name,
			Price:            item.Price,
			Quantity:         item.Quantity,
			Status:           itemStatus,
			Cancelled:        item.Cancelled,
			CancelledAt:      item.CancelledAt,
			OriginalQuantity: item.OriginalQuantity,
		}
		if item.CancelledStage != "" {
			if state.CancelledStage, err = parseStage(item.CancelledStage); err != nil {
				return nil, fmt.Errorf("item %s: %w", item.ID, err)
			}
		}
		items = append(items, state)
	}

	units := make(map[string]order.Stage, len(dto.UnitStatuses))
	for key, raw := range dto.UnitStatuses {
		stage, err := parseStage(raw)
		if err != nil {
			// normalization refills the unit from its line
			continue
		}
		units[key] = stage
	}

	history := make([]order.HistoryEntry, 0, len(dto.EditHistory))
	for _, entry := range dto.EditHistory {
		stage, _ := parseStage(entry.Stage)
		history = append(history, order.HistoryEntry{
			At:       entry.Timestamp,
			Action:   order.Action(entry.Action),
			Stage:    stage,
			ItemName: entry.ItemName,
			Quantity: entry.Quantity,
			Detail:   entry.Details,
		})
	}

	state := order.OrderState{
		ID:             id,
		Number:         dto.Number,
		CustomerName:   dto.CustomerName,
		Items:          items,
		Status:         status,
		CreatedAt:      dto.CreatedAt,
		ServiceType:    parseServiceType(dto.ServiceType),
		Diners:         dto.Diners,
		Total:          dto.Total,
		DiscountAmount: kernel.ZeroMoney(),
		DiscountReason: dto.DiscountReason,
		PaymentMethod:  parsePaymentMethod(dto.PaymentMethod),
		UnitStatuses:   units,
		Edited:         dto.Edited,
		History:        history,
	}
	if dto.DiscountAmount != nil {
		state.DiscountAmount = *dto.DiscountAmount
	}
	if dto.Settled != nil {
		state.Settled = *dto.Settled
	} else {
		state.Settled = inferSettled(state)
	}

	return order.RestoreOrder(state)
}

// inferSettled decides settlement for records written before it was stored. A tender
// or a payment entry proves it. Otherwise a paid status only counts when active units
// are left, since an order whose lines were all cancelled also reports paid.
func inferSettled(state order.OrderState) bool {
	if state.PaymentMethod != "" {
		return true
	}
	for _, entry := range state.History {
		if entry.Action == order.ActionPaymentProcessed {
			return true
		}
	}
	if state.Status != order.Paid {
		return false
	}
	for _, item := range state.Items {
		if !item.Cancelled && item.Quantity > 0 {
			return true
		}
	}
	return false
}

func parsePaymentMethod(raw string) order.PaymentMethod {
	if current, dead := deadPaymentMethods[strings.ToLower(raw)]; dead {
		return current
	}
	return order.PaymentMethod(raw)
}

func parseServiceType(raw string) order.ServiceType {
	if current, dead := deadServiceTypes[strings.ToLower(raw)]; dead {
		return current
	}
	return order.ServiceType(raw)
}

func parseStage(raw string) (order.Stage, error) {
	if current, dead := deadStatuses[raw]; dead {
		raw = current
	}
	return order.ParseStage(raw)
}

func parseOrderID(raw string) (kernel.UUID, error) {
	if id, err := kernel.UUIDFromString(raw); err == nil {
		return id, nil
	}
	if raw == "" {
		return kernel.UUID{}, fmt.Errorf("order without identifier")
	}
	return kernel.UUIDFromGoogle(uuid.NewSHA1(legacyIDNamespace, []byte(raw)))
}
