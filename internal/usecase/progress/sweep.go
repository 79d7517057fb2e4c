package progress

import (
	"errors"
	"log/slog"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

// SweepExpired fails or gap-blocks pending stages whose window closed with
// the target unmet. A concurrent advance that resolves the same stage first
// simply wins; the sweep skips it.
func (uc *DefaultProgressUsecase) SweepExpired(batch int) error {
	stages, err := uc.progressRepo.FindExpiredPendingStages(time.Now(), batch)
	if err != nil {
		return err
	}

	for _, stage := range stages {
		progress, err := uc.progressRepo.GetProgressByID(stage.ProgressID)
		if err != nil {
			slog.Error("sweep: failed to load progress",
				"progress_id", stage.ProgressID, "error", err.Error())
			continue
		}
		if progress.Status != domain.ProgressActive {
			continue
		}

		now := time.Now()
		transition := failTransition(progress, stage, stage.ActualValue, now)
		if err := uc.progressRepo.ApplyStageTransition(transition); err != nil {
			if errors.Is(err, domain.ErrStaleVersion) {
				continue
			}
			slog.Error("sweep: failed to resolve expired stage",
				"stage_id", stage.ID, "error", err.Error())
			continue
		}
		uc.afterTransition(progress, stage.StageOrder, transition, now)
	}
	return nil
}
