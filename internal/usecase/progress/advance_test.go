package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

func twoStageSnapshot(allowGap bool) domain.TemplateSnapshot {
	return domain.TemplateSnapshot{
		ID:        7,
		Name:      "first-quarter activation",
		TimeBasis: domain.TimeBasisDays,
		Dimension: domain.DimensionAmount,
		AllowGap:  allowGap,
		Stages: []*domain.RewardStage{
			{ID: 71, TemplateID: 7, StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
			{ID: 72, TemplateID: 7, StageOrder: 2, StartValue: 31, EndValue: 90, TargetValue: 50000, RewardAmount: 8000},
		},
	}
}

func activeProgress(allowGap bool, currentStage int) *domain.TerminalRewardProgress {
	return &domain.TerminalRewardProgress{
		ID:               100,
		TerminalSN:       "SN-1001",
		TemplateID:       7,
		TemplateSnapshot: twoStageSnapshot(allowGap),
		BindAgentID:      55,
		BindTime:         time.Now().AddDate(0, 0, -(currentStage-1)*30),
		CurrentStage:     currentStage,
		Status:           domain.ProgressActive,
	}
}

func pendingStage(progress *domain.TerminalRewardProgress, order int, end time.Time) *domain.TerminalStageReward {
	def := progress.TemplateSnapshot.Stage(order)
	return &domain.TerminalStageReward{
		ID:          int64(200 + order),
		ProgressID:  progress.ID,
		TerminalSN:  progress.TerminalSN,
		StageOrder:  order,
		StageStart:  end.AddDate(0, 0, -30),
		StageEnd:    end,
		TargetValue: def.TargetValue,
		Status:      domain.StagePending,
	}
}

func newTestUsecase(progressRepo *MockRewardProgressRepository, templateRepo *MockRewardTemplateRepository, agentRepo *MockAgentRewardAmountRepository) *DefaultProgressUsecase {
	return NewDefaultProgressUsecase(progressRepo, templateRepo, agentRepo, nil, nil)
}

func TestAdvance_TwoStageChain(t *testing.T) {
	t.Run("stage 1 achieved at target opens stage 2", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		agentRepo := new(MockAgentRewardAmountRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), agentRepo)

		progress := activeProgress(false, 1)
		stage := pendingStage(progress, 1, time.Now().Add(24*time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)
		agentRepo.On("GetAmount", int64(55), int64(7)).Return(nil, domain.ErrNotFound)

		var applied *domain.StageTransition
		progressRepo.On("ApplyStageTransition", mock.Anything).Run(func(args mock.Arguments) {
			applied = args.Get(0).(*domain.StageTransition)
		}).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 10000})

		assert.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, 1, out.StageOrder)
		assert.Equal(t, domain.StageAchieved, out.StageStatus)
		assert.Equal(t, domain.ProgressActive, out.ProgressStatus)
		assert.Equal(t, int64(2000), *out.RewardAmount)

		assert.Equal(t, 2, applied.CurrentStage)
		assert.Equal(t, 1, applied.LastAchievedStage)
		assert.Len(t, applied.NextStages, 1)
		assert.Equal(t, 2, applied.NextStages[0].StageOrder)
		assert.Equal(t, domain.StagePending, applied.NextStages[0].Status)
		assert.Equal(t, int64(50000), applied.NextStages[0].TargetValue)
	})

	t.Run("last stage achieved completes the progress", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		agentRepo := new(MockAgentRewardAmountRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), agentRepo)

		progress := activeProgress(false, 2)
		progress.LastAchievedStage = 1
		stage := pendingStage(progress, 2, time.Now().Add(24*time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)
		agentRepo.On("GetAmount", int64(55), int64(7)).Return(nil, domain.ErrNotFound)

		var applied *domain.StageTransition
		progressRepo.On("ApplyStageTransition", mock.Anything).Run(func(args mock.Arguments) {
			applied = args.Get(0).(*domain.StageTransition)
		}).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 50000})

		assert.NoError(t, err)
		assert.Equal(t, domain.StageAchieved, out.StageStatus)
		assert.Equal(t, domain.ProgressCompleted, out.ProgressStatus)
		assert.Equal(t, int64(8000), *out.RewardAmount)
		assert.Empty(t, applied.NextStages)
		assert.NotNil(t, applied.CompletedAt)
	})
}

func TestAdvance_BelowTargetLeavesStagePending(t *testing.T) {
	progressRepo := new(MockRewardProgressRepository)
	uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), new(MockAgentRewardAmountRepository))

	progress := activeProgress(false, 1)
	stage := pendingStage(progress, 1, time.Now().Add(24*time.Hour))

	progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
	progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)

	out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 9999})

	assert.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, domain.StagePending, out.StageStatus)
	progressRepo.AssertNotCalled(t, "ApplyStageTransition", mock.Anything)
}

func TestAdvance_ExpiredWindow(t *testing.T) {
	t.Run("gap disallowed blocks remaining stages and terminates", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), new(MockAgentRewardAmountRepository))

		progress := activeProgress(false, 1)
		stage := pendingStage(progress, 1, time.Now().Add(-time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)

		var applied *domain.StageTransition
		progressRepo.On("ApplyStageTransition", mock.Anything).Run(func(args mock.Arguments) {
			applied = args.Get(0).(*domain.StageTransition)
		}).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 3000})

		assert.NoError(t, err)
		assert.Equal(t, domain.StageFailed, out.StageStatus)
		assert.Equal(t, domain.ProgressTerminated, out.ProgressStatus)
		assert.Nil(t, out.RewardAmount)

		assert.Len(t, applied.NextStages, 1)
		assert.Equal(t, domain.StageGapBlocked, applied.NextStages[0].Status)
		assert.Equal(t, 2, applied.NextStages[0].StageOrder)
		assert.NotNil(t, applied.TerminatedAt)
	})

	t.Run("gap allowed opens the next stage after a failure", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), new(MockAgentRewardAmountRepository))

		progress := activeProgress(true, 1)
		stage := pendingStage(progress, 1, time.Now().Add(-time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)

		var applied *domain.StageTransition
		progressRepo.On("ApplyStageTransition", mock.Anything).Run(func(args mock.Arguments) {
			applied = args.Get(0).(*domain.StageTransition)
		}).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 3000})

		assert.NoError(t, err)
		assert.Equal(t, domain.StageFailed, out.StageStatus)
		assert.Equal(t, domain.ProgressActive, out.ProgressStatus)
		assert.Len(t, applied.NextStages, 1)
		assert.Equal(t, domain.StagePending, applied.NextStages[0].Status)
		assert.Equal(t, 2, applied.CurrentStage)
	})

	t.Run("gap allowed completes the progress when the last stage fails", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), new(MockAgentRewardAmountRepository))

		progress := activeProgress(true, 2)
		progress.LastAchievedStage = 1
		stage := pendingStage(progress, 2, time.Now().Add(-time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)

		var applied *domain.StageTransition
		progressRepo.On("ApplyStageTransition", mock.Anything).Run(func(args mock.Arguments) {
			applied = args.Get(0).(*domain.StageTransition)
		}).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 40000})

		assert.NoError(t, err)
		assert.Equal(t, domain.StageFailed, out.StageStatus)
		assert.Equal(t, domain.ProgressCompleted, out.ProgressStatus)
		assert.Equal(t, 1, applied.LastAchievedStage)
		assert.NotNil(t, applied.CompletedAt)
	})

	t.Run("target met after the window closed still fails", func(t *testing.T) {
		progressRepo := new(MockRewardProgressRepository)
		uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), new(MockAgentRewardAmountRepository))

		progress := activeProgress(true, 1)
		stage := pendingStage(progress, 1, time.Now().Add(-time.Hour))

		progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
		progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)
		progressRepo.On("ApplyStageTransition", mock.Anything).Return(nil)

		out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 99999})

		assert.NoError(t, err)
		assert.Equal(t, domain.StageFailed, out.StageStatus)
		assert.Nil(t, out.RewardAmount)
	})
}

func TestAdvance_AgentOverrideReplacesStageReward(t *testing.T) {
	progressRepo := new(MockRewardProgressRepository)
	agentRepo := new(MockAgentRewardAmountRepository)
	uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), agentRepo)

	progress := activeProgress(false, 1)
	stage := pendingStage(progress, 1, time.Now().Add(24*time.Hour))

	progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
	progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)
	agentRepo.On("GetAmount", int64(55), int64(7)).Return(&domain.AgentRewardAmount{
		AgentID: 55, TemplateID: 7, RewardAmount: 1500,
	}, nil)
	progressRepo.On("ApplyStageTransition", mock.Anything).Return(nil)

	out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 12000})

	assert.NoError(t, err)
	assert.Equal(t, int64(1500), *out.RewardAmount)
}

func TestAdvance_ConcurrentLoserGetsStaleVersion(t *testing.T) {
	progressRepo := new(MockRewardProgressRepository)
	agentRepo := new(MockAgentRewardAmountRepository)
	uc := newTestUsecase(progressRepo, new(MockRewardTemplateRepository), agentRepo)

	progress := activeProgress(false, 1)
	stage := pendingStage(progress, 1, time.Now().Add(24*time.Hour))

	progressRepo.On("GetActiveProgressBySN", "SN-1001").Return(progress, nil)
	progressRepo.On("GetPendingStage", int64(100)).Return(stage, nil)
	agentRepo.On("GetAmount", int64(55), int64(7)).Return(nil, domain.ErrNotFound)
	progressRepo.On("ApplyStageTransition", mock.Anything).Return(domain.ErrStaleVersion)

	out, err := uc.Advance(&progressdto.AdvanceInput{TerminalSN: "SN-1001", ObservedValue: 10000})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrStaleVersion)
}
