package progress

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type ProgressDetailOutput struct {
	Progress     *domain.TerminalRewardProgress
	StageRewards []*domain.TerminalStageReward
}

type AdvanceOutput struct {
	StageOrder     int
	StageStatus    domain.StageRewardStatus
	RewardAmount   *int64
	ProgressStatus domain.RewardProgressStatus
	// Changed is false when the observation left the stage pending.
	Changed bool
}
