package jobs

import (
	"context"
	"log/slog"
	"time"

	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/transfer"

	"github.com/robfig/cron/v3"
)

// overdueScanPageSize is the page size the scan reads transfers with.
const overdueScanPageSize = 200

// transferLister is the read side the scan depends on. Satisfied by
// queries.GetTransfersQueryHandler.
type transferLister interface {
	Handle(ctx context.Context, query queries.GetTransfersQuery) ([]queries.GetTransfersQueryResponse, error)
}

// OverdueTransferJob periodically scans for in-transit transfers past their
// ETA and logs them for the operations team. Read-only: the job never mutates
// transfer or unit state.
type OverdueTransferJob struct {
	handler transferLister
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueTransferJob creates a job that watches for overdue transfers.
func NewOverdueTransferJob(handler transferLister, logger *slog.Logger) *OverdueTransferJob {
	return &OverdueTransferJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_transfer_job"),
	}
}

// Start begins the overdue transfer scan, running every minute.
func (j *OverdueTransferJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.scan(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue transfer scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue transfer job started (running every minute)")
	return nil
}

// Stop stops the overdue transfer job.
func (j *OverdueTransferJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue transfer job stopped")
}

// scan pages through every in-transit transfer so overdue ones are logged no
// matter how deep in the listing they sit.
func (j *OverdueTransferJob) scan(ctx context.Context) error {
	status := transfer.StatusInTransit
	now := time.Now().UTC()

	for offset := 0; ; offset += overdueScanPageSize {
		query, err := queries.NewGetTransfersQuery(&status, nil, overdueScanPageSize, offset)
		if err != nil {
			return err
		}

		transfers, err := j.handler.Handle(ctx, query)
		if err != nil {
			return err
		}

		for _, t := range transfers {
			if t.ETA == nil || !now.After(*t.ETA) {
				continue
			}

			j.logger.WarnContext(ctx, "Transfer overdue",
				"transfer_id", t.ID.String(),
				"unit_id", t.UnitID.String(),
				"to_location_id", t.ToLocationID.String(),
				"eta", t.ETA,
				"overdue_for", now.Sub(*t.ETA).String(),
			)
		}

		if len(transfers) < overdueScanPageSize {
			return nil
		}
	}
}
