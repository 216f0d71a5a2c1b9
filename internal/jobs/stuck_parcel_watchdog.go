package jobs

import (
	"context"
	"log/slog"
	"time"

	"zapshift/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StuckParcelLister is the read-side dependency of the watchdog. It is
// satisfied by queries.GetStuckParcelsQueryHandler.
type StuckParcelLister interface {
	Handle(ctx context.Context, query queries.GetStuckParcelsQuery) ([]queries.GetStuckParcelsQueryResponse, error)
}

// StuckParcelWatchdog periodically reports parcels that have been sitting
// in rider_assigned or in_transit longer than maxAge. It is read-only:
// riders are never released automatically, the log lines exist for
// operators to chase.
type StuckParcelWatchdog struct {
	lister StuckParcelLister
	maxAge time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewStuckParcelWatchdog creates the watchdog. maxAge is how long a parcel
// may stay in delivery before it is reported.
func NewStuckParcelWatchdog(lister StuckParcelLister, maxAge time.Duration, logger *slog.Logger) *StuckParcelWatchdog {
	return &StuckParcelWatchdog{
		lister: lister,
		maxAge: maxAge,
		cron:   cron.New(),
		logger: logger.With("component", "stuck_parcel_watchdog"),
	}
}

// Start schedules the watchdog to run every minute.
func (j *StuckParcelWatchdog) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck parcel watchdog started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *StuckParcelWatchdog) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck parcel watchdog stopped")
}

func (j *StuckParcelWatchdog) runOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.maxAge)

	query, err := queries.NewGetStuckParcelsQuery(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck parcel watchdog failed to build query", "error", err)
		return
	}

	stuck, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck parcel watchdog query failed", "error", err)
		return
	}

	for _, p := range stuck {
		j.logger.WarnContext(ctx, "Parcel overdue in delivery",
			"parcel_id", p.ID.String(),
			"tracking_code", p.TrackingCode,
			"delivery_status", p.DeliveryStatus,
			"age", time.Since(p.CreatedAt).Round(time.Second).String(),
		)
	}
}
