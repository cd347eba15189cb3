package order_test

import (
	"testing"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	f := newFixture(t)

	takeOrder := func(createdAt time.Time, diners int) *order.Order {
		draft := order.NewDraft()
		draft.Add(f.pizza)
		draft.Add(f.soda)
		o, err := order.NewOrder(kernel.NewUUID(), 1, "Ana", order.OnSite, diners, draft, createdAt)
		require.NoError(t, err)
		return o
	}

	paidCash := takeOrder(now, 2)
	_, err := paidCash.ApplyDiscount([]string{"soda"}, "vip", now)
	require.NoError(t, err)
	require.NoError(t, paidCash.ProcessPayment(order.Cash, now))

	paidCard := takeOrder(now.Add(time.Hour), 3)
	require.NoError(t, paidCard.CancelItem("soda", "", now))
	require.NoError(t, paidCard.ProcessPayment(order.Card, now))

	open := takeOrder(now.Add(2*time.Hour), 4)
	yesterday := takeOrder(now.Add(-24*time.Hour), 1)
	require.NoError(t, yesterday.ProcessPayment(order.Cash, now))

	all := []*order.Order{paidCash, paidCard, open, yesterday}

	t.Run("window filters by creation time", func(t *testing.T) {
		summary := order.Summarize(all, now, now.Add(3*time.Hour))

		assert.Equal(t, 3, summary.Orders)
		assert.Equal(t, 2, summary.SettledOrders)
		assert.Equal(t, "20.00", summary.Revenue.String())
		assert.Equal(t, "10.00", summary.AverageTicket.String())
		assert.Equal(t, "5.00", summary.Discounts.String())
		assert.Equal(t, "5.00", summary.CancelledValue.String())
		assert.Equal(t, 5, summary.Diners)
		assert.Equal(t, map[order.Stage]int{order.Paid: 2, order.Preparing: 1}, summary.ByStatus)
		assert.Equal(t, "10.00", summary.ByMethod[order.Cash].String())
		assert.Equal(t, "10.00", summary.ByMethod[order.Card].String())
	})

	t.Run("open window counts everything", func(t *testing.T) {
		summary := order.Summarize(all, time.Time{}, time.Time{})

		assert.Equal(t, 4, summary.Orders)
		assert.Equal(t, "35.00", summary.Revenue.String())
		assert.Equal(t, "25.00", summary.ByMethod[order.Cash].String())
	})

	t.Run("no orders", func(t *testing.T) {
		summary := order.Summarize(nil, time.Time{}, time.Time{})
		assert.Zero(t, summary.Orders)
		assert.Equal(t, "0.00", summary.AverageTicket.String())
	})
}
