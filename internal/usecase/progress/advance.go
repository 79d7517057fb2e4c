package progress

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	publisher "github.com/lunarpay/settlement-reward-service/internal/infrastructure/kafka"
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

// Advance feeds the accrued value of the active stage into the state machine.
// The stage resolves to achieved only while its window is still open; once
// the window closed an unmet target fails the stage. Concurrent advances for
// one progress serialize on the pending-stage conditional update: the loser
// gets ErrStaleVersion and the boundary is crossed exactly once.
func (uc *DefaultProgressUsecase) Advance(input *progressdto.AdvanceInput) (*progressdto.AdvanceOutput, error) {
	started := time.Now()

	progress, err := uc.progressRepo.GetActiveProgressBySN(input.TerminalSN)
	if err != nil {
		return nil, err
	}
	stage, err := uc.progressRepo.GetPendingStage(progress.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	windowOpen := now.Before(stage.StageEnd)
	if windowOpen && input.ObservedValue < stage.TargetValue {
		return &progressdto.AdvanceOutput{
			StageOrder:     stage.StageOrder,
			StageStatus:    domain.StagePending,
			ProgressStatus: progress.Status,
			Changed:        false,
		}, nil
	}

	var transition *domain.StageTransition
	if windowOpen {
		transition, err = uc.achieveTransition(progress, stage, input.ObservedValue, now)
		if err != nil {
			return nil, err
		}
	} else {
		transition = failTransition(progress, stage, input.ObservedValue, now)
	}

	if err := uc.progressRepo.ApplyStageTransition(transition); err != nil {
		if errors.Is(err, domain.ErrStaleVersion) && uc.metrics != nil {
			uc.metrics.RecordVersionConflict("stage_reward")
		}
		return nil, err
	}

	uc.afterTransition(progress, stage.StageOrder, transition, started)

	return &progressdto.AdvanceOutput{
		StageOrder:     stage.StageOrder,
		StageStatus:    transition.StageStatus,
		RewardAmount:   transition.RewardAmount,
		ProgressStatus: transition.ProgressStatus,
		Changed:        true,
	}, nil
}

func (uc *DefaultProgressUsecase) achieveTransition(progress *domain.TerminalRewardProgress, stage *domain.TerminalStageReward, observed int64, now time.Time) (*domain.StageTransition, error) {
	reward, err := uc.rewardFor(progress, stage.StageOrder)
	if err != nil {
		return nil, err
	}

	transition := &domain.StageTransition{
		StageID:           stage.ID,
		ActualValue:       observed,
		IsAchieved:        true,
		StageStatus:       domain.StageAchieved,
		RewardAmount:      &reward,
		ProgressID:        progress.ID,
		CurrentStage:      stage.StageOrder,
		LastAchievedStage: stage.StageOrder,
		ProgressStatus:    domain.ProgressActive,
	}

	if stage.StageOrder >= maxStageOrder(&progress.TemplateSnapshot) {
		completedAt := now
		transition.ProgressStatus = domain.ProgressCompleted
		transition.CompletedAt = &completedAt
		return transition, nil
	}

	nextDef := progress.TemplateSnapshot.Stage(stage.StageOrder + 1)
	transition.CurrentStage = stage.StageOrder + 1
	transition.NextStages = []*domain.TerminalStageReward{newStageRecord(progress, nextDef)}
	return transition, nil
}

// failTransition resolves a stage whose window closed with the target unmet.
// Without allow_gap every remaining stage is materialized gap_blocked and the
// progress terminates; with allow_gap the chain continues, and failing the
// last stage completes the progress.
func failTransition(progress *domain.TerminalRewardProgress, stage *domain.TerminalStageReward, observed int64, now time.Time) *domain.StageTransition {
	transition := &domain.StageTransition{
		StageID:           stage.ID,
		ActualValue:       observed,
		IsAchieved:        false,
		StageStatus:       domain.StageFailed,
		ProgressID:        progress.ID,
		CurrentStage:      stage.StageOrder,
		LastAchievedStage: progress.LastAchievedStage,
		ProgressStatus:    domain.ProgressActive,
	}

	max := maxStageOrder(&progress.TemplateSnapshot)
	if !progress.TemplateSnapshot.AllowGap {
		for order := stage.StageOrder + 1; order <= max; order++ {
			blocked := newStageRecord(progress, progress.TemplateSnapshot.Stage(order))
			blocked.Status = domain.StageGapBlocked
			transition.NextStages = append(transition.NextStages, blocked)
		}
		terminatedAt := now
		transition.ProgressStatus = domain.ProgressTerminated
		transition.TerminatedAt = &terminatedAt
		return transition
	}

	if stage.StageOrder >= max {
		completedAt := now
		transition.ProgressStatus = domain.ProgressCompleted
		transition.CompletedAt = &completedAt
		return transition
	}

	transition.CurrentStage = stage.StageOrder + 1
	transition.NextStages = []*domain.TerminalStageReward{newStageRecord(progress, progress.TemplateSnapshot.Stage(stage.StageOrder + 1))}
	return transition
}

// rewardFor fixes the payable amount at achievement time: the agent's
// differential override when one is set, otherwise the snapshot stage amount.
func (uc *DefaultProgressUsecase) rewardFor(progress *domain.TerminalRewardProgress, stageOrder int) (int64, error) {
	reward := progress.TemplateSnapshot.Stage(stageOrder).RewardAmount
	override, err := uc.agentRewardRepo.GetAmount(progress.BindAgentID, progress.TemplateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return reward, nil
		}
		return 0, err
	}
	if override.RewardAmount > 0 {
		reward = override.RewardAmount
	}
	return reward, nil
}

func (uc *DefaultProgressUsecase) afterTransition(progress *domain.TerminalRewardProgress, stageOrder int, transition *domain.StageTransition, started time.Time) {
	if uc.metrics != nil {
		uc.metrics.RecordStageOutcome(string(transition.StageStatus))
		uc.metrics.ObserveAdvanceDuration(string(transition.StageStatus), time.Since(started).Seconds())
	}
	if uc.kafkaPublisher == nil {
		return
	}
	go func(event publisher.StageOutcomeEvent) {
		if err := uc.kafkaPublisher.PublishStageOutcome(event); err != nil {
			slog.Error("failed to publish stage outcome event",
				"terminal_sn", event.TerminalSN, "error", err.Error())
		}
	}(publisher.StageOutcomeEvent{
		EventID:        uuid.NewString(),
		TerminalSN:     progress.TerminalSN,
		TemplateID:     progress.TemplateID,
		StageOrder:     stageOrder,
		StageStatus:    string(transition.StageStatus),
		RewardAmount:   transition.RewardAmount,
		ProgressStatus: string(transition.ProgressStatus),
		CreatedAt:      time.Now(),
	})
}
