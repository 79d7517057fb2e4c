package progress

import (
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

func (uc *DefaultProgressUsecase) GetProgress(terminalSN string) (*progressdto.ProgressDetailOutput, error) {
	progress, err := uc.progressRepo.GetProgressBySN(terminalSN)
	if err != nil {
		return nil, err
	}
	stages, err := uc.progressRepo.GetStageRewards(progress.ID)
	if err != nil {
		return nil, err
	}
	return &progressdto.ProgressDetailOutput{
		Progress:     progress,
		StageRewards: stages,
	}, nil
}
