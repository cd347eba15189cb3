package queries

import (
	"errors"
	"fmt"
	"time"

	"pos/internal/core/domain/model/business"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var (
	ErrGetSalesSummaryQueryIsNotConstructed = errors.New(
		"GetSalesSummaryQuery must be created via NewGetSalesSummaryQuery constructor",
	)
)

// GetSalesSummaryQuery computes the sales dashboard of a business over orders created
// in [from, to). A zero bound leaves that side open.
type GetSalesSummaryQuery struct {
	businessID business.ID
	from       time.Time
	to         time.Time

	guard guard.ConstructorGuard
}

func NewGetSalesSummaryQuery(businessID business.ID, from, to time.Time) (GetSalesSummaryQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetSalesSummaryQuery{}, err
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return GetSalesSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("from %s is not before to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}

	return GetSalesSummaryQuery{
		businessID: businessID,
		from:       from,
		to:         to,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetSalesSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSalesSummaryQueryIsNotConstructed)
}

func (q GetSalesSummaryQuery) BusinessID() business.ID {
	return q.businessID
}

func (q GetSalesSummaryQuery) From() time.Time {
	return q.from
}

func (q GetSalesSummaryQuery) To() time.Time {
	return q.to
}

// SalesSummaryResponse is the read model of the sales dashboard.
type SalesSummaryResponse struct {
	From           *time.Time              `json:"from,omitempty"`
	To             *time.Time              `json:"to,omitempty"`
	Orders         int                     `json:"orders"`
	SettledOrders  int                     `json:"settledOrders"`
	Revenue        kernel.Money            `json:"revenue"`
	AverageTicket  kernel.Money            `json:"averageTicket"`
	Discounts      kernel.Money            `json:"discounts"`
	CancelledValue kernel.Money            `json:"cancelledValue"`
	Diners         int                     `json:"diners"`
	ByStatus       map[string]int          `json:"byStatus"`
	ByMethod       map[string]kernel.Money `json:"byPaymentMethod"`
}

// NewSalesSummaryResponse projects a summary into its read model.
func NewSalesSummaryResponse(s order.SalesSummary) SalesSummaryResponse {
	resp := SalesSummaryResponse{
		Orders:         s.Orders,
		SettledOrders:  s.SettledOrders,
		Revenue:        s.Revenue,
		AverageTicket:  s.AverageTicket,
		Discounts:      s.Discounts,
		CancelledValue: s.CancelledValue,
		Diners:         s.Diners,
		ByStatus:       make(map[string]int, len(s.ByStatus)),
		ByMethod:       make(map[string]kernel.Money, len(s.ByMethod)),
	}
	if !s.From.IsZero() {
		from := s.From
		resp.From = &from
	}
	if !s.To.IsZero() {
		to := s.To
		resp.To = &to
	}
	for stage, n := range s.ByStatus {
		resp.ByStatus[stage.String()] = n
	}
	for method, amount := range s.ByMethod {
		resp.ByMethod[string(method)] = amount
	}
	return resp
}
