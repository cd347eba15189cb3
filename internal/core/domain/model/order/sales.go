package order

import (
	"time"

	"pos/internal/core/domain/model/kernel"
)

// SalesSummary aggregates the orders of a business for the sales dashboard.
type SalesSummary struct {
	From time.Time
	To   time.Time

	Orders         int
	SettledOrders  int
	Revenue        kernel.Money
	AverageTicket  kernel.Money
	Discounts      kernel.Money
	CancelledValue kernel.Money
	Diners         int

	ByStatus map[Stage]int
	ByMethod map[PaymentMethod]kernel.Money
}

// Summarize folds the orders created in [from, to) into a SalesSummary. A zero bound
// leaves that side of the window open. Revenue only counts settled orders.
func Summarize(orders []*Order, from, to time.Time) SalesSummary {
	summary := SalesSummary{
		From:           from,
		To:             to,
		Revenue:        kernel.ZeroMoney(),
		AverageTicket:  kernel.ZeroMoney(),
		Discounts:      kernel.ZeroMoney(),
		CancelledValue: kernel.ZeroMoney(),
		ByStatus:       make(map[Stage]int),
		ByMethod:       make(map[PaymentMethod]kernel.Money),
	}

	for _, o := range orders {
		if !from.IsZero() && o.createdAt.Before(from) {
			continue
		}
		if !to.IsZero() && !o.createdAt.Before(to) {
			continue
		}

		summary.Orders++
		summary.ByStatus[o.status]++
		summary.Discounts = summary.Discounts.Add(o.discountAmount)
		summary.CancelledValue = summary.CancelledValue.Add(o.CancelledValue())

		if !o.settled {
			continue
		}
		summary.SettledOrders++
		summary.Revenue = summary.Revenue.Add(o.total)
		summary.Diners += o.diners
		if o.paymentMethod != "" {
			summary.ByMethod[o.paymentMethod] = summary.ByMethod[o.paymentMethod].Add(o.total)
		}
	}

	summary.AverageTicket = summary.Revenue.Div(summary.SettledOrders)
	return summary
}
