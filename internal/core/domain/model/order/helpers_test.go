package order_test

import (
	"fmt"
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

func mustMenuItem(t *testing.T, id, name string, price float64) menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, name, kernel.MoneyFromFloat(price), "mains")
	require.NoError(t, err)
	return item
}

type fixture struct {
	pizza menu.Item
	soda  menu.Item
	salad menu.Item
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixture{
		pizza: mustMenuItem(t, "pizza", "Pizza", 10),
		soda:  mustMenuItem(t, "soda", "Soda", 5),
		salad: mustMenuItem(t, "salad", "Salad", 7),
	}
}

func (f fixture) catalog() menu.Catalog {
	return menu.NewCatalog([]menu.Item{f.pizza, f.soda, f.salad})
}

// newOrder takes an order of 2 pizzas and 1 soda.
func (f fixture) newOrder(t *testing.T) *order.Order {
	t.Helper()
	draft := order.NewDraft()
	draft.Add(f.pizza)
	draft.Add(f.pizza)
	draft.Add(f.soda)

	o, err := order.NewOrder(kernel.NewUUID(), 1, "Ana", order.OnSite, 2, draft, now)
	require.NoError(t, err)
	return o
}

// assertInvariants checks the total, unit map and billing aggregation invariants.
func assertInvariants(t *testing.T, o *order.Order) {
	t.Helper()

	expectedTotal := kernel.ZeroMoney()
	expectedKeys := map[string]bool{}
	for _, item := range o.Items() {
		if item.IsCancelled() {
			continue
		}
		if item.Quantity() > 0 {
			expectedTotal = expectedTotal.Add(item.LineTotal())
		}
		for i := 0; i < item.Quantity(); i++ {
			expectedKeys[order.UnitKey(item.ID(), i)] = true
		}
	}
	expectedTotal = expectedTotal.Sub(o.DiscountAmount())
	assert.Equal(t, expectedTotal.String(), o.Total().String(), "total")

	units := o.UnitStatuses()
	actualKeys := map[string]bool{}
	for key, stage := range units {
		actualKeys[key] = true
		assert.True(t, stage.IsUnitStage(), fmt.Sprintf("unit %s at %s", key, stage))
	}
	assert.Equal(t, expectedKeys, actualKeys, "unit keys")

	if o.Status() != order.Paid {
		allBilling := order.AllUnitsAt(o.Items(), units, order.Billing)
		assert.Equal(t, allBilling, o.Status() == order.Billing, "billing round trip")
	}
	if order.AllUnitsAt(o.Items(), units, order.Billing) {
		for _, item := range o.Items() {
			if item.IsActive() {
				assert.Equal(t, order.Billing, item.Status(), "line %s", item.ID())
			}
		}
	}
}
