package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/business"
	"pos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultSalesSnapshotSchedule runs the snapshot at the top of every hour.
const DefaultSalesSnapshotSchedule = "0 0 * * * *"

// SalesSnapshotJob periodically summarizes today's sales of each configured business,
// logs the figures and publishes them as a SalesSnapshot.
type SalesSnapshotJob struct {
	handler    queries.GetSalesSummaryQueryHandler
	publisher  ports.EventPublisher
	businesses []business.ID
	schedule   string
	now        func() time.Time

	cron   *cron.Cron
	logger *slog.Logger
}

// NewSalesSnapshotJob creates the job. An empty schedule falls back to
// DefaultSalesSnapshotSchedule (cron with seconds).
func NewSalesSnapshotJob(
	handler queries.GetSalesSummaryQueryHandler,
	publisher ports.EventPublisher,
	businesses []business.ID,
	schedule string,
	logger *slog.Logger,
) *SalesSnapshotJob {
	if schedule == "" {
		schedule = DefaultSalesSnapshotSchedule
	}
	return &SalesSnapshotJob{
		handler:    handler,
		publisher:  publisher,
		businesses: businesses,
		schedule:   schedule,
		now:        time.Now,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "sales_snapshot_job"),
	}
}

// Start registers the snapshot on the schedule and starts the scheduler.
func (j *SalesSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Sales snapshot job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid sales snapshot schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sales snapshot job started",
		"schedule", j.schedule, "businesses", len(j.businesses))
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish.
func (j *SalesSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sales snapshot job stopped")
}

// Run takes one snapshot per business. A failing business does not stop the others;
// their errors are joined.
func (j *SalesSnapshotJob) Run(ctx context.Context) error {
	takenAt := j.now().UTC()
	dayStart := time.Date(takenAt.Year(), takenAt.Month(), takenAt.Day(), 0, 0, 0, 0, time.UTC)

	var failures []error
	for _, businessID := range j.businesses {
		if err := j.snapshot(ctx, businessID, dayStart, takenAt); err != nil {
			failures = append(failures, fmt.Errorf("business %s: %w", businessID, err))
		}
	}
	return errors.Join(failures...)
}

func (j *SalesSnapshotJob) snapshot(ctx context.Context, businessID business.ID, from, takenAt time.Time) error {
	query, err := queries.NewGetSalesSummaryQuery(businessID, from, time.Time{})
	if err != nil {
		return err
	}

	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Sales snapshot",
		"business_id", businessID.String(),
		"orders", summary.Orders,
		"settled_orders", summary.SettledOrders,
		"revenue", summary.Revenue.String(),
		"discounts", summary.Discounts.String(),
	)

	if j.publisher == nil {
		return nil
	}
	return j.publisher.PublishSalesSnapshot(ctx, ports.SalesSnapshot{
		BusinessID: businessID,
		TakenAt:    takenAt,
		Summary:    summary,
	})
}
