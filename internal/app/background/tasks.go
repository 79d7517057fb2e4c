package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/config"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/progress"
)

type BackgroundTasks struct {
	ProgressUsecase progress.ProgressUsecase
	SweepInterval   time.Duration
	SweepBatchSize  int
}

func NewBackgroundTasks(progressUC progress.ProgressUsecase, cfg *config.SettlementConfig) *BackgroundTasks {
	return &BackgroundTasks{
		ProgressUsecase: progressUC,
		SweepInterval:   cfg.Sweep.Interval,
		SweepBatchSize:  cfg.Sweep.BatchSize,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startExpiredStageSweep(ctx)
}

// startExpiredStageSweep periodically fails pending stages whose window has
// closed. The sweep is the fallback path; an advance call on a live terminal
// usually settles the stage first.
func (bt *BackgroundTasks) startExpiredStageSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.ProgressUsecase.SweepExpired(bt.SweepBatchSize); err != nil {
				slog.Error("expired stage sweep failed", "error", err.Error())
			}
		}
	}
}
