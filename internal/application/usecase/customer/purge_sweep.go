package customer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/khata-ledger/backend/internal/application/adapter"
	"github.com/khata-ledger/backend/internal/application/stream"
)

// PurgeSweepOutput reports how many customers were permanently removed.
type PurgeSweepOutput struct {
	Purged int
}

// PurgeSweepUseCase permanently removes soft-deleted customers whose
// retention window has elapsed, together with their transactions. It is
// driven opportunistically by change notifications, not by a timer.
type PurgeSweepUseCase struct {
	customerRepo adapter.CustomerRepository
	clock        adapter.Clock
	retention    time.Duration
}

// NewPurgeSweepUseCase creates a new PurgeSweepUseCase instance.
func NewPurgeSweepUseCase(
	customerRepo adapter.CustomerRepository,
	clock adapter.Clock,
	retention time.Duration,
) *PurgeSweepUseCase {
	return &PurgeSweepUseCase{
		customerRepo: customerRepo,
		clock:        clock,
		retention:    retention,
	}
}

// Execute purges every expired customer. Each purge is atomic per customer;
// a failure on one does not abort the rest.
func (uc *PurgeSweepUseCase) Execute(ctx context.Context) (*PurgeSweepOutput, error) {
	cutoff := uc.clock.Now().Add(-uc.retention)
	expired, err := uc.customerRepo.FindExpired(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to find expired customers: %w", err)
	}

	purged := 0
	for _, c := range expired {
		if err := uc.customerRepo.Purge(ctx, c.ID); err != nil {
			slog.Error("Failed to purge expired customer", "customerID", c.ID, "error", err)
			continue
		}
		slog.Info("Purged expired customer", "customerID", c.ID, "deletedAt", c.DeletedAt)
		purged++
	}

	return &PurgeSweepOutput{Purged: purged}, nil
}

// RunSweeper blocks consuming change signals from the hub and sweeping after
// each one, until ctx is cancelled or the hub closes. A sweep runs once at
// startup so records that expired while the process was down are collected.
func (uc *PurgeSweepUseCase) RunSweeper(ctx context.Context, hub *stream.Hub) {
	signals, cancel := hub.Subscribe()
	defer cancel()

	sweep := func() {
		if _, err := uc.Execute(ctx); err != nil {
			slog.Error("Retention sweep failed", "error", err)
		}
	}

	sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			sweep()
		}
	}
}
