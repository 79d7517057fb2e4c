package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainSnapshot(snapshot models.TemplateSnapshot) domain.TemplateSnapshot {
	stages := make([]*domain.RewardStage, len(snapshot.Stages))
	for i, stage := range snapshot.Stages {
		stages[i] = &domain.RewardStage{
			ID:           stage.ID,
			TemplateID:   stage.TemplateID,
			StageOrder:   stage.StageOrder,
			StartValue:   stage.StartValue,
			EndValue:     stage.EndValue,
			TargetValue:  stage.TargetValue,
			RewardAmount: stage.RewardAmount,
		}
	}
	return domain.TemplateSnapshot{
		ID:         snapshot.ID,
		Name:       snapshot.Name,
		TimeBasis:  domain.TimeBasis(snapshot.TimeBasis),
		Dimension:  domain.Dimension(snapshot.Dimension),
		TransTypes: snapshot.TransTypes,
		AmountMin:  snapshot.AmountMin,
		AmountMax:  snapshot.AmountMax,
		AllowGap:   snapshot.AllowGap,
		Stages:     stages,
	}
}

func ToGORMSnapshot(snapshot domain.TemplateSnapshot) models.TemplateSnapshot {
	stages := make([]models.SnapshotStage, len(snapshot.Stages))
	for i, stage := range snapshot.Stages {
		stages[i] = models.SnapshotStage{
			ID:           stage.ID,
			TemplateID:   stage.TemplateID,
			StageOrder:   stage.StageOrder,
			StartValue:   stage.StartValue,
			EndValue:     stage.EndValue,
			TargetValue:  stage.TargetValue,
			RewardAmount: stage.RewardAmount,
		}
	}
	return models.TemplateSnapshot{
		ID:         snapshot.ID,
		Name:       snapshot.Name,
		TimeBasis:  string(snapshot.TimeBasis),
		Dimension:  string(snapshot.Dimension),
		TransTypes: snapshot.TransTypes,
		AmountMin:  snapshot.AmountMin,
		AmountMax:  snapshot.AmountMax,
		AllowGap:   snapshot.AllowGap,
		Stages:     stages,
	}
}

func ToDomainProgress(model *models.TerminalRewardProgressModel) *domain.TerminalRewardProgress {
	return &domain.TerminalRewardProgress{
		ID:                model.ID,
		TerminalSN:        model.TerminalSN,
		TemplateID:        model.TemplateID,
		TemplateSnapshot:  ToDomainSnapshot(model.TemplateSnapshot),
		BindAgentID:       model.BindAgentID,
		BindTime:          model.BindTime,
		CurrentStage:      model.CurrentStage,
		LastAchievedStage: model.LastAchievedStage,
		Status:            domain.RewardProgressStatus(model.Status),
		CompletedAt:       model.CompletedAt,
		TerminatedAt:      model.TerminatedAt,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

func ToGORMProgress(progress *domain.TerminalRewardProgress) *models.TerminalRewardProgressModel {
	return &models.TerminalRewardProgressModel{
		ID:                progress.ID,
		TerminalSN:        progress.TerminalSN,
		TemplateID:        progress.TemplateID,
		TemplateSnapshot:  ToGORMSnapshot(progress.TemplateSnapshot),
		BindAgentID:       progress.BindAgentID,
		BindTime:          progress.BindTime,
		CurrentStage:      progress.CurrentStage,
		LastAchievedStage: progress.LastAchievedStage,
		Status:            string(progress.Status),
		CompletedAt:       progress.CompletedAt,
		TerminatedAt:      progress.TerminatedAt,
		CreatedAt:         progress.CreatedAt,
		UpdatedAt:         progress.UpdatedAt,
	}
}

func ToDomainStageReward(model *models.TerminalStageRewardModel) *domain.TerminalStageReward {
	return &domain.TerminalStageReward{
		ID:           model.ID,
		ProgressID:   model.ProgressID,
		TerminalSN:   model.TerminalSN,
		StageOrder:   model.StageOrder,
		StageStart:   model.StageStart,
		StageEnd:     model.StageEnd,
		TargetValue:  model.TargetValue,
		ActualValue:  model.ActualValue,
		IsAchieved:   model.IsAchieved,
		RewardAmount: model.RewardAmount,
		Status:       domain.StageRewardStatus(model.Status),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMStageReward(stage *domain.TerminalStageReward) *models.TerminalStageRewardModel {
	return &models.TerminalStageRewardModel{
		ID:           stage.ID,
		ProgressID:   stage.ProgressID,
		TerminalSN:   stage.TerminalSN,
		StageOrder:   stage.StageOrder,
		StageStart:   stage.StageStart,
		StageEnd:     stage.StageEnd,
		TargetValue:  stage.TargetValue,
		ActualValue:  stage.ActualValue,
		IsAchieved:   stage.IsAchieved,
		RewardAmount: stage.RewardAmount,
		Status:       string(stage.Status),
		CreatedAt:    stage.CreatedAt,
		UpdatedAt:    stage.UpdatedAt,
	}
}
