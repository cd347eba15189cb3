package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	f := newFixture(t)

	t.Run("should take an order from the draft with every unit preparing", func(t *testing.T) {
		o := f.newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, 1, o.Number())
		assert.Equal(t, "Ana", o.CustomerName())
		assert.Equal(t, order.OnSite, o.ServiceType())
		assert.Equal(t, 2, o.Diners())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, "25.00", o.Total().String())
		assert.Equal(t, order.Preparing, o.Status())
		assert.False(t, o.IsEdited())
		assert.Empty(t, o.History())
		assert.False(t, o.HasDiscount())

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "pizza", items[0].ID())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "soda", items[1].ID())
		assert.Equal(t, 1, items[1].Quantity())

		assert.Equal(t, map[string]order.Stage{
			"pizza-0": order.Preparing,
			"pizza-1": order.Preparing,
			"soda-0":  order.Preparing,
		}, o.UnitStatuses())
		assertInvariants(t, o)
	})

	t.Run("should fail without customer name", func(t *testing.T) {
		draft := order.NewDraft()
		draft.Add(f.pizza)

		o, err := order.NewOrder(kernel.NewUUID(), 1, "  ", order.OnSite, 1, draft, now)

		require.ErrorIs(t, err, order.ErrCustomerNameRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty draft", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), 1, "Ana", order.OnSite, 1, order.NewDraft(), now)

		require.ErrorIs(t, err, order.ErrNoItemsSelected)
		assert.Nil(t, o)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var id kernel.UUID

		o, err := order.NewOrder(id, 0, "", "drive-in", -1, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerNameRequired)
		assert.ErrorIs(t, err, order.ErrNoItemsSelected)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "order number")
		assert.Contains(t, err.Error(), "service type")
		assert.Contains(t, err.Error(), "diners")
	})

	t.Run("unconstructed order is invalid", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestDraft_Add(t *testing.T) {
	f := newFixture(t)
	draft := order.NewDraft()
	assert.True(t, draft.IsEmpty())

	draft.Add(f.pizza)
	draft.Add(f.soda)
	draft.Add(f.pizza)

	lines := draft.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "pizza", lines[0].Item.ID())
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "soda", lines[1].Item.ID())
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestOrder_Lifecycle(t *testing.T) {
	f := newFixture(t)
	o := f.newOrder(t)

	t.Run("advancing one of two pizzas keeps the line preparing and the order delivering", func(t *testing.T) {
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Preparing))

		pizza, _ := o.Item("pizza")
		assert.Equal(t, order.Preparing, pizza.Status())
		stage, _ := o.UnitStage("pizza", 0)
		assert.Equal(t, order.Delivering, stage)
		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, o.InView(order.ViewPreparing))
		assert.True(t, o.InView(order.ViewDelivering))
		assert.False(t, o.InView(order.ViewBilling))
		assertInvariants(t, o)
	})

	t.Run("advancing every unit to billing flips the order and every line to billing", func(t *testing.T) {
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Delivering))
		require.NoError(t, o.AdvanceUnit("pizza", 1, order.Preparing))
		require.NoError(t, o.AdvanceUnit("pizza", 1, order.Delivering))
		assert.Equal(t, order.Delivering, o.Status())

		n, err := o.AdvanceItem("soda", order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.NoError(t, o.AdvanceUnit("soda", 0, order.Delivering))

		assert.Equal(t, order.Billing, o.Status())
		for _, item := range o.Items() {
			assert.Equal(t, order.Billing, item.Status(), item.Name())
		}
		assert.True(t, o.InView(order.ViewBilling))
		assert.False(t, o.InView(order.ViewDelivering))
		assert.Empty(t, o.History())
		assertInvariants(t, o)
	})

	t.Run("discounting the soda waives its line value", func(t *testing.T) {
		amount, err := o.ApplyDiscount([]string{"soda"}, "goodwill", now)
		require.NoError(t, err)

		assert.Equal(t, "5.00", amount.String())
		assert.Equal(t, "20.00", o.Total().String())
		assert.Equal(t, "5.00", o.DiscountAmount().String())
		assert.Equal(t, "goodwill", o.DiscountReason())
		assert.True(t, o.IsEdited())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.ActionDiscountApplied, history[0].Action)
		assert.Equal(t, order.Billing, history[0].Stage)
		assert.Equal(t, "Soda", history[0].ItemName)
		assertInvariants(t, o)
	})

	t.Run("paying cash settles the order", func(t *testing.T) {
		require.NoError(t, o.ProcessPayment(order.Cash, now))

		assert.Equal(t, order.Paid, o.Status())
		method, ok := o.PaymentMethod()
		assert.True(t, ok)
		assert.Equal(t, order.Cash, method)
		assert.True(t, o.InView(order.ViewPaid))
		assert.False(t, o.InView(order.ViewBilling))

		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.ActionPaymentProcessed, history[1].Action)
		assert.Equal(t, order.Billing, history[1].Stage)
		assert.Equal(t, "cash", history[1].Detail)
		assertInvariants(t, o)
	})
}

func TestOrder_AdvanceUnit(t *testing.T) {
	f := newFixture(t)

	t.Run("unit must be at the viewed stage", func(t *testing.T) {
		o := f.newOrder(t)
		err := o.AdvanceUnit("pizza", 0, order.Delivering)
		require.ErrorIs(t, err, order.ErrUnitNotInView)
		stage, _ := o.UnitStage("pizza", 0)
		assert.Equal(t, order.Preparing, stage)
	})

	t.Run("only preparing and delivering tabs advance units", func(t *testing.T) {
		o := f.newOrder(t)
		require.ErrorIs(t, o.AdvanceUnit("pizza", 0, order.Billing), order.ErrViewNotAdvanceable)
		_, err := o.AdvanceItem("pizza", order.Paid)
		require.ErrorIs(t, err, order.ErrViewNotAdvanceable)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		o := f.newOrder(t)
		require.ErrorIs(t, o.AdvanceUnit("burger", 0, order.Preparing), errs.ErrObjectNotFound)
	})

	t.Run("unit index must be in range", func(t *testing.T) {
		o := f.newOrder(t)
		require.ErrorIs(t, o.AdvanceUnit("pizza", 2, order.Preparing), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, o.AdvanceUnit("pizza", -1, order.Preparing), errs.ErrValueIsOutOfRange)
	})

	t.Run("cancelled item cannot advance", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("soda", "", now))
		require.ErrorIs(t, o.AdvanceUnit("soda", 0, order.Preparing), order.ErrItemAlreadyCancelled)
	})

	t.Run("line is promoted only when all of its units agree", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Preparing))
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Delivering))
		require.NoError(t, o.AdvanceUnit("pizza", 1, order.Preparing))

		pizza, _ := o.Item("pizza")
		assert.Equal(t, order.Preparing, pizza.Status(), "units are billing and delivering")

		require.NoError(t, o.AdvanceUnit("pizza", 1, order.Delivering))
		assert.Equal(t, order.Billing, pizza.Status())
		assert.Equal(t, order.Delivering, o.Status(), "soda is still preparing")
		assertInvariants(t, o)
	})

	t.Run("the last unit reaching billing forces lagging lines to billing", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.OrderState{
			ID:           kernel.NewUUID(),
			Number:       7,
			CustomerName: "Luis",
			Status:       order.Delivering,
			ServiceType:  order.Takeaway,
			Items: []order.ItemState{
				{ID: "pizza", Name: "Pizza", Price: kernel.MoneyFromFloat(10), Quantity: 2, Status: order.Preparing},
				{ID: "soda", Name: "Soda", Price: kernel.MoneyFromFloat(5), Quantity: 1, Status: order.Delivering},
			},
			Total: kernel.MoneyFromFloat(25),
			UnitStatuses: map[string]order.Stage{
				"pizza-0": order.Billing,
				"pizza-1": order.Billing,
				"soda-0":  order.Delivering,
			},
		})
		require.NoError(t, err)

		require.NoError(t, restored.AdvanceUnit("soda", 0, order.Delivering))

		assert.Equal(t, order.Billing, restored.Status())
		pizza, _ := restored.Item("pizza")
		assert.Equal(t, order.Billing, pizza.Status())
		assertInvariants(t, restored)
	})

	t.Run("advance item reports nothing to advance", func(t *testing.T) {
		o := f.newOrder(t)
		_, err := o.AdvanceItem("pizza", order.Delivering)
		require.ErrorIs(t, err, order.ErrUnitNotInView)
	})
}

func TestOrder_AddItem(t *testing.T) {
	f := newFixture(t)

	t.Run("same name bumps the active line and adds a preparing unit", func(t *testing.T) {
		o := f.newOrder(t)
		_, err := o.AdvanceItem("pizza", order.Preparing)
		require.NoError(t, err)
		at := now.Add(time.Minute)

		require.NoError(t, o.AddItem(f.pizza, at))

		pizza, _ := o.Item("pizza")
		assert.Equal(t, 3, pizza.Quantity())
		assert.Equal(t, order.Preparing, pizza.Status())
		original, ok := pizza.OriginalQuantity()
		assert.True(t, ok)
		assert.Equal(t, 2, original)
		stage, _ := o.UnitStage("pizza", 2)
		assert.Equal(t, order.Preparing, stage)
		assert.Equal(t, "35.00", o.Total().String())
		assert.True(t, o.IsEdited())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.HistoryEntry{
			At:       at,
			Action:   order.ActionAdded,
			Stage:    order.Delivering,
			ItemName: "Pizza",
			Quantity: 1,
		}, history[0])
		assertInvariants(t, o)
	})

	t.Run("new name appends a line at preparing", func(t *testing.T) {
		o := f.newOrder(t)

		require.NoError(t, o.AddItem(f.salad, now))

		salad, ok := o.Item("salad")
		require.True(t, ok)
		assert.Equal(t, 1, salad.Quantity())
		assert.Equal(t, order.Preparing, salad.Status())
		assert.Equal(t, "32.00", o.Total().String())
		assertInvariants(t, o)
	})

	t.Run("identifier held by a cancelled line is not reused", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("soda", "", now))

		require.NoError(t, o.AddItem(f.soda, now))

		items := o.Items()
		require.Len(t, items, 3)
		added := items[2]
		assert.NotEqual(t, "soda", added.ID())
		assert.Contains(t, added.ID(), "soda-")
		assert.False(t, added.IsCancelled())
		assert.Equal(t, "25.00", o.Total().String())
		assertInvariants(t, o)
	})
}

func TestOrder_ChangeItemQuantity(t *testing.T) {
	f := newFixture(t)

	t.Run("increase adds units at the line stage", func(t *testing.T) {
		o := f.newOrder(t)
		_, err := o.AdvanceItem("soda", order.Preparing)
		require.NoError(t, err)

		require.NoError(t, o.ChangeItemQuantity("soda", 1, now))

		stage, ok := o.UnitStage("soda", 1)
		require.True(t, ok)
		assert.Equal(t, order.Delivering, stage)
		assert.Equal(t, "30.00", o.Total().String())
		assert.Equal(t, order.ActionAdded, o.History()[0].Action)
		assertInvariants(t, o)
	})

	t.Run("decrease drops the highest units and never goes below zero", func(t *testing.T) {
		o := f.newOrder(t)

		require.NoError(t, o.ChangeItemQuantity("pizza", -1, now))
		_, ok := o.UnitStage("pizza", 1)
		assert.False(t, ok)
		assert.Equal(t, "15.00", o.Total().String())

		require.NoError(t, o.ChangeItemQuantity("pizza", -5, now))
		pizza, _ := o.Item("pizza")
		assert.Equal(t, 0, pizza.Quantity())
		assert.False(t, pizza.IsCancelled())
		assert.Equal(t, "5.00", o.Total().String())

		require.NoError(t, o.ChangeItemQuantity("pizza", -1, now))
		assert.Len(t, o.History(), 2, "no-op at zero records nothing")

		original, _ := pizza.OriginalQuantity()
		assert.Equal(t, 2, original)
		assertInvariants(t, o)
	})

	t.Run("cancelled line cannot change", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("pizza", "", now))
		require.ErrorIs(t, o.ChangeItemQuantity("pizza", 1, now), order.ErrItemAlreadyCancelled)
	})

	t.Run("dropping the lagging unit promotes the line and bills the order", func(t *testing.T) {
		o := f.newOrder(t)
		_, err := o.AdvanceItem("soda", order.Preparing)
		require.NoError(t, err)
		_, err = o.AdvanceItem("soda", order.Delivering)
		require.NoError(t, err)
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Preparing))
		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Delivering))
		pizza, _ := o.Item("pizza")
		require.Equal(t, order.Preparing, pizza.Status())
		require.Equal(t, order.Delivering, o.Status())

		require.NoError(t, o.ChangeItemQuantity("pizza", -1, now))

		assert.Equal(t, order.Billing, pizza.Status())
		assert.Equal(t, order.Billing, o.Status())
		assert.True(t, o.InView(order.ViewBilling))
		assertInvariants(t, o)
	})
}

func TestOrder_CancelItem(t *testing.T) {
	f := newFixture(t)

	t.Run("cancelling before billing needs no reason", func(t *testing.T) {
		draft := order.NewDraft()
		draft.Add(f.pizza)
		draft.Add(f.soda)
		o, err := order.NewOrder(kernel.NewUUID(), 2, "Eva", order.Takeaway, 1, draft, now)
		require.NoError(t, err)

		require.NoError(t, o.CancelItem("pizza", "", now))

		pizza, ok := o.Item("pizza")
		require.True(t, ok, "cancellation is not deletion")
		assert.True(t, pizza.IsCancelled())
		at, cancelled := pizza.CancelledAt()
		assert.True(t, cancelled)
		assert.Equal(t, now, at)
		assert.Equal(t, order.Preparing, pizza.CancelledStage())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "5.00", o.Total().String())
		_, ok = o.UnitStage("pizza", 0)
		assert.False(t, ok)
		assert.Equal(t, order.ActionRemoved, o.History()[0].Action)
		assertInvariants(t, o)
	})

	t.Run("cancelling at billing requires a reason", func(t *testing.T) {
		o := f.newOrder(t)
		for _, id := range []string{"pizza", "soda"} {
			_, err := o.AdvanceItem(id, order.Preparing)
			require.NoError(t, err)
			_, err = o.AdvanceItem(id, order.Delivering)
			require.NoError(t, err)
		}
		require.Equal(t, order.Billing, o.Status())

		err := o.CancelItem("soda", " ", now)
		require.ErrorIs(t, err, order.ErrCancellationReasonRequired)
		soda, _ := o.Item("soda")
		assert.False(t, soda.IsCancelled())
		assert.Empty(t, o.History())

		require.NoError(t, o.CancelItem("soda", "spilled", now))
		assert.True(t, soda.IsCancelled())
		assert.Equal(t, order.Billing, soda.CancelledStage())
		assert.Equal(t, "spilled", o.History()[0].Detail)
		assert.Equal(t, "20.00", o.Total().String())
		assertInvariants(t, o)
	})

	t.Run("cancelling on a paid order needs no reason", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.ProcessPayment(order.Cash, now))

		require.NoError(t, o.CancelItem("soda", "", now))

		soda, _ := o.Item("soda")
		assert.True(t, soda.IsCancelled())
		assert.Equal(t, order.Paid, soda.CancelledStage())
		assert.Equal(t, order.Paid, o.Status())
		assertInvariants(t, o)
	})

	t.Run("cancelling the lagging line promotes the rest to billing", func(t *testing.T) {
		o, err := order.RestoreOrder(order.OrderState{
			ID:           kernel.NewUUID(),
			Number:       8,
			CustomerName: "Eva",
			Status:       order.Delivering,
			ServiceType:  order.OnSite,
			Items: []order.ItemState{
				{ID: "pizza", Name: "Pizza", Price: kernel.MoneyFromFloat(10), Quantity: 2, Status: order.Delivering},
				{ID: "soda", Name: "Soda", Price: kernel.MoneyFromFloat(5), Quantity: 1, Status: order.Delivering},
			},
			Total: kernel.MoneyFromFloat(25),
			UnitStatuses: map[string]order.Stage{
				"pizza-0": order.Billing,
				"pizza-1": order.Billing,
				"soda-0":  order.Delivering,
			},
		})
		require.NoError(t, err)

		require.NoError(t, o.CancelItem("soda", "", now))

		pizza, _ := o.Item("pizza")
		assert.Equal(t, order.Billing, pizza.Status())
		assert.Equal(t, order.Billing, o.Status())
		assertInvariants(t, o)
	})

	t.Run("cancellation cannot be repeated", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("soda", "", now))
		require.ErrorIs(t, o.CancelItem("soda", "", now), order.ErrItemAlreadyCancelled)
	})

	t.Run("cancelled lines leave status aggregation", func(t *testing.T) {
		o := f.newOrder(t)
		_, err := o.AdvanceItem("pizza", order.Preparing)
		require.NoError(t, err)
		_, err = o.AdvanceItem("pizza", order.Delivering)
		require.NoError(t, err)
		assert.Equal(t, order.Delivering, o.Status())

		require.NoError(t, o.CancelItem("soda", "", now))

		assert.Equal(t, order.Billing, o.Status())
		assertInvariants(t, o)
	})
}

func TestOrder_ApplyDiscount(t *testing.T) {
	f := newFixture(t)

	t.Run("requires items and reason", func(t *testing.T) {
		o := f.newOrder(t)

		_, err := o.ApplyDiscount(nil, "", now)

		require.ErrorIs(t, err, order.ErrNoItemsSelected)
		require.ErrorIs(t, err, order.ErrDiscountReasonRequired)
		assert.False(t, o.HasDiscount())
		assert.Empty(t, o.History())
		assert.Equal(t, "25.00", o.Total().String())
	})

	t.Run("unknown item aborts without mutation", func(t *testing.T) {
		o := f.newOrder(t)

		_, err := o.ApplyDiscount([]string{"soda", "burger"}, "vip", now)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "25.00", o.Total().String())
		assert.False(t, o.IsEdited())
	})

	t.Run("discounts accumulate across calls", func(t *testing.T) {
		o := f.newOrder(t)

		_, err := o.ApplyDiscount([]string{"pizza", "pizza"}, "birthday", now)
		require.NoError(t, err)
		assert.Equal(t, "20.00", o.DiscountAmount().String())

		_, err = o.ApplyDiscount([]string{"soda"}, "manager", now)
		require.NoError(t, err)
		assert.Equal(t, "25.00", o.DiscountAmount().String())
		assert.Equal(t, "manager", o.DiscountReason())
		assert.Equal(t, "0.00", o.Total().String())
		assert.Len(t, o.History(), 2)
		assertInvariants(t, o)
	})

	t.Run("cancelled lines can still be discounted", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("soda", "", now))

		_, err := o.ApplyDiscount([]string{"soda"}, "staff override", now)

		require.NoError(t, err)
		assert.Equal(t, "15.00", o.Total().String())
		assertInvariants(t, o)
	})
}

func TestOrder_ProcessPayment(t *testing.T) {
	f := newFixture(t)

	t.Run("requires a method", func(t *testing.T) {
		o := f.newOrder(t)
		require.ErrorIs(t, o.ProcessPayment("", now), order.ErrPaymentMethodRequired)
		require.ErrorIs(t, o.ProcessPayment("voucher", now), order.ErrPaymentMethodInvalid)
		assert.Equal(t, order.Preparing, o.Status())
		_, ok := o.PaymentMethod()
		assert.False(t, ok)
	})

	t.Run("any stage can be paid and stays paid", func(t *testing.T) {
		o := f.newOrder(t)

		require.NoError(t, o.ProcessPayment(order.Transfer, now))
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, order.Preparing, o.History()[0].Stage)

		require.NoError(t, o.AdvanceUnit("pizza", 0, order.Preparing))
		assert.Equal(t, order.Paid, o.Status())
		assertInvariants(t, o)
	})
}

func TestRestoreOrder(t *testing.T) {
	f := newFixture(t)

	t.Run("state round trip keeps every field", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.AdvanceUnit("pizza", 1, order.Preparing))
		require.NoError(t, o.CancelItem("soda", "", now))
		_, err := o.ApplyDiscount([]string{"pizza"}, "promo", now)
		require.NoError(t, err)

		restored, err := order.RestoreOrder(o.State())

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.Equal(t, o.State(), restored.State())
		assert.True(t, restored.IsEqual(o))
	})

	t.Run("payment survives a round trip", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.ProcessPayment(order.Card, now))

		restored, err := order.RestoreOrder(o.State())

		require.NoError(t, err)
		assert.True(t, restored.IsSettled())
		require.NoError(t, restored.AdvanceUnit("pizza", 0, order.Preparing))
		assert.Equal(t, order.Paid, restored.Status())
	})

	t.Run("an order emptied by cancellations is not settled after reload", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.CancelItem("pizza", "", now))
		require.NoError(t, o.CancelItem("soda", "", now))
		require.Equal(t, order.Paid, o.Status())
		require.False(t, o.IsSettled())

		restored, err := order.RestoreOrder(o.State())
		require.NoError(t, err)
		assert.False(t, restored.IsSettled())

		require.NoError(t, restored.AddItem(f.salad, now))

		assert.Equal(t, order.Preparing, restored.Status())
		assert.True(t, restored.InView(order.ViewPreparing))
		assert.False(t, restored.InView(order.ViewPaid))
		assertInvariants(t, restored)
	})

	t.Run("missing unit entries are filled from the line stage", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.OrderState{
			ID:     kernel.NewUUID(),
			Number: 3,
			Status: order.Delivering,
			Items: []order.ItemState{
				{ID: "pizza", Name: "Pizza", Price: kernel.MoneyFromFloat(10), Quantity: 2, Status: order.Delivering},
			},
			Total:        kernel.MoneyFromFloat(20),
			UnitStatuses: map[string]order.Stage{"pizza-0": order.Billing, "ghost-0": order.Preparing},
		})

		require.NoError(t, err)
		assert.Equal(t, order.OnSite, restored.ServiceType())
		assert.Equal(t, map[string]order.Stage{
			"pizza-0": order.Billing,
			"pizza-1": order.Delivering,
		}, restored.UnitStatuses())
	})

	t.Run("invalid state is rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(order.OrderState{ID: kernel.NewUUID(), Status: order.Unknown})
		require.Error(t, err)

		_, err = order.RestoreOrder(order.OrderState{
			ID:     kernel.NewUUID(),
			Status: order.Preparing,
			Items:  []order.ItemState{{ID: "", Quantity: 1, Status: order.Preparing}},
		})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
