package order

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// Order is the aggregate root of the order tracker. It owns its lines, the per-unit
// stage map and the edit history, and keeps them consistent across every workflow.
//
// Order follows these invariants:
//   - total equals Subtotal(items) minus discountAmount after every workflow
//   - the unit map holds exactly the keys UnitKey(id, i) for 0 <= i < quantity of each active item
//   - status is re-derived from units after every item mutation until the order is settled
//   - history is append-only
type Order struct {
	id           kernel.UUID
	number       int
	customerName string
	items        []*Item
	status       Stage
	createdAt    time.Time
	serviceType  ServiceType
	diners       int
	total        kernel.Money

	discountAmount kernel.Money
	discountReason string
	paymentMethod  PaymentMethod

	// units maps UnitKey(itemID, index) to the stage of that single unit.
	units map[string]Stage

	// settled is set by payment; a settled order stays Paid whatever its units do.
	settled bool

	edited  bool
	history []HistoryEntry

	guard guard.ConstructorGuard
}

// OrderState is the flat representation of an Order used by persistence adapters.
type OrderState struct {
	ID             kernel.UUID
	Number         int
	CustomerName   string
	Items          []ItemState
	Status         Stage
	CreatedAt      time.Time
	ServiceType    ServiceType
	Diners         int
	Total          kernel.Money
	DiscountAmount kernel.Money
	DiscountReason string
	PaymentMethod  PaymentMethod
	Settled        bool
	UnitStatuses   map[string]Stage
	Edited         bool
	History        []HistoryEntry
}

// NewOrder turns a submitted new-order form into an Order. Every staged line starts
// at Preparing with all of its units.
//
// Example:
//
//	draft := order.NewDraft()
//	draft.Add(pizza)
//	draft.Add(pizza)
//	o, err := order.NewOrder(kernel.NewUUID(), 1, "Ana", order.OnSite, 2, draft, time.Now())
func NewOrder(
	id kernel.UUID,
	number int,
	customerName string,
	serviceType ServiceType,
	diners int,
	draft *Draft,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:      createdAt,
		discountAmount: kernel.ZeroMoney(),
		units:          make(map[string]Stage),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerName(customerName),
		o.setServiceType(serviceType),
		o.setDiners(diners),
		o.setLines(draft),
	); err != nil {
		return nil, err
	}

	o.recalculate()
	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state. Stored totals, status and
// history are taken as they are; the unit map is normalized so that every active
// item has exactly one entry per unit.
func RestoreOrder(state OrderState) (*Order, error) {
	o := &Order{
		number:         state.Number,
		customerName:   state.CustomerName,
		status:         state.Status,
		createdAt:      state.CreatedAt,
		serviceType:    state.ServiceType,
		diners:         state.Diners,
		total:          state.Total,
		discountAmount: state.DiscountAmount,
		discountReason: state.DiscountReason,
		paymentMethod:  state.PaymentMethod,
		settled:        state.Settled,
		edited:         state.Edited,
		history:        append([]HistoryEntry(nil), state.History...),
		guard:          guard.NewConstructorGuard(),
	}

	if o.serviceType == "" {
		o.serviceType = OnSite
	}

	if err := errors.Join(
		o.setID(state.ID),
		state.Status.Validate(),
		o.serviceType.Validate(),
		validateStoredPaymentMethod(state.PaymentMethod),
	); err != nil {
		return nil, err
	}

	o.items = make([]*Item, 0, len(state.Items))
	for _, itemState := range state.Items {
		item, err := restoreItem(itemState)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", state.ID, err)
		}
		o.items = append(o.items, item)
	}

	o.units = normalizeUnits(o.items, state.UnitStatuses)
	return o, nil
}

func validateStoredPaymentMethod(m PaymentMethod) error {
	if m == "" {
		return nil
	}
	return m.Validate()
}

// normalizeUnits keeps valid stored entries for existing units, fills missing ones
// from the line's coarse stage and drops everything else.
func normalizeUnits(items []*Item, stored map[string]Stage) map[string]Stage {
	units := make(map[string]Stage)
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		for i := 0; i < item.quantity; i++ {
			key := UnitKey(item.id, i)
			if stage, ok := stored[key]; ok && stage.IsUnitStage() {
				units[key] = stage
				continue
			}
			units[key] = item.status.unitDefault()
		}
	}
	return units
}

// Validate ensures the Order went through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number is the human facing sequence number within the business.
func (o *Order) Number() int {
	return o.number
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns every line including cancelled ones.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item looks up a line by identifier.
func (o *Order) Item(itemID string) (*Item, bool) {
	for _, item := range o.items {
		if item.id == itemID {
			return item, true
		}
	}
	return nil, false
}

func (o *Order) Status() Stage {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

func (o *Order) Diners() int {
	return o.diners
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) DiscountAmount() kernel.Money {
	return o.discountAmount
}

func (o *Order) DiscountReason() string {
	return o.discountReason
}

// HasDiscount reports whether a discount was ever applied.
func (o *Order) HasDiscount() bool {
	return !o.discountAmount.IsZero() || o.discountReason != ""
}

// PaymentMethod returns the tender and whether the order was paid through the payment workflow.
func (o *Order) PaymentMethod() (PaymentMethod, bool) {
	return o.paymentMethod, o.paymentMethod != ""
}

// UnitStatuses returns a copy of the unit stage map.
func (o *Order) UnitStatuses() map[string]Stage {
	return maps.Clone(o.units)
}

// UnitStage returns the stage of one unit of an active line.
func (o *Order) UnitStage(itemID string, index int) (Stage, bool) {
	stage, ok := o.units[UnitKey(itemID, index)]
	return stage, ok
}

// IsSettled reports whether the order went through payment.
func (o *Order) IsSettled() bool {
	return o.settled
}

// IsEdited reports whether anything happened to the order after it was taken.
func (o *Order) IsEdited() bool {
	return o.edited
}

// History returns a copy of the edit history, oldest first.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// State returns a detached snapshot of the order.
func (o *Order) State() OrderState {
	items := make([]ItemState, 0, len(o.items))
	for _, item := range o.items {
		items = append(items, item.State())
	}
	return OrderState{
		ID:             o.id,
		Number:         o.number,
		CustomerName:   o.customerName,
		Items:          items,
		Status:         o.status,
		CreatedAt:      o.createdAt,
		ServiceType:    o.serviceType,
		Diners:         o.diners,
		Total:          o.total,
		DiscountAmount: o.discountAmount,
		DiscountReason: o.discountReason,
		PaymentMethod:  o.paymentMethod,
		Settled:        o.settled,
		UnitStatuses:   maps.Clone(o.units),
		Edited:         o.edited,
		History:        o.History(),
	}
}

// recalculate restores the total invariant, lifts line stages to what their units
// show and re-derives the status. A settled order stays paid.
func (o *Order) recalculate() {
	o.normalizeStages()
	o.total = Subtotal(o.items).Sub(o.discountAmount)
	if !o.settled {
		o.status = DeriveStatus(o.items, o.units)
	}
}

// normalizeStages moves a line forward once all of its units agree on a later stage,
// and forces every active line to Billing when every unit of the order is there.
// Lines never move backwards.
func (o *Order) normalizeStages() {
	for _, item := range o.items {
		if !item.IsActive() || item.quantity == 0 {
			continue
		}
		stage := o.units[UnitKey(item.id, 0)]
		if stage > item.status && unitsAgree(item, o.units, stage) {
			item.status = stage
		}
	}

	if AllUnitsAt(o.items, o.units, Billing) {
		for _, item := range o.items {
			if item.IsActive() && item.status < Billing {
				item.status = Billing
			}
		}
	}
}

func (o *Order) activeItem(itemID string) (*Item, error) {
	item, ok := o.Item(itemID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("item", itemID)
	}
	if item.cancelled {
		return nil, ErrItemAlreadyCancelled
	}
	return item, nil
}

// synthesizeItemID returns base when no line uses it yet, otherwise base with a
// random suffix.
func (o *Order) synthesizeItemID(base string) string {
	if _, taken := o.Item(base); !taken {
		return base
	}
	for {
		id := base + "-" + kernel.NewUUID().String()[:8]
		if _, taken := o.Item(id); !taken {
			return id
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%d must be positive", number))
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCustomerNameRequired
	}
	o.customerName = name
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setDiners(diners int) error {
	if diners < 0 {
		return errs.NewValueIsInvalidErrorWithCause("diners", fmt.Errorf("%d must not be negative", diners))
	}
	o.diners = diners
	return nil
}

func (o *Order) setLines(draft *Draft) error {
	if draft.IsEmpty() {
		return ErrNoItemsSelected
	}
	for _, line := range draft.Lines() {
		if err := line.Item.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			continue
		}
		item := newItem(o.synthesizeItemID(line.Item.ID()), line.Item.Name(), line.Item.Price(), line.Quantity, Preparing)
		o.items = append(o.items, item)
		for i := 0; i < item.quantity; i++ {
			o.units[UnitKey(item.id, i)] = Preparing
		}
	}
	if len(o.items) == 0 {
		return ErrNoItemsSelected
	}
	return nil
}
