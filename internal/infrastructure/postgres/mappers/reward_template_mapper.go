package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainTemplate(model *models.RewardTemplateModel, stageModels []models.RewardStageModel) *domain.RewardTemplate {
	stages := make([]*domain.RewardStage, len(stageModels))
	for i, stageModel := range stageModels {
		stages[i] = ToDomainStage(&stageModel)
	}
	return &domain.RewardTemplate{
		ID:          model.ID,
		Name:        model.Name,
		TimeBasis:   domain.TimeBasis(model.TimeBasis),
		Dimension:   domain.Dimension(model.Dimension),
		TransTypes:  model.TransTypes,
		AmountMin:   model.AmountMin,
		AmountMax:   model.AmountMax,
		AllowGap:    model.AllowGap,
		Enabled:     model.Enabled,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
		Stages:      stages,
	}
}

func ToGORMTemplate(template *domain.RewardTemplate) *models.RewardTemplateModel {
	return &models.RewardTemplateModel{
		ID:          template.ID,
		Name:        template.Name,
		TimeBasis:   string(template.TimeBasis),
		Dimension:   string(template.Dimension),
		TransTypes:  template.TransTypes,
		AmountMin:   template.AmountMin,
		AmountMax:   template.AmountMax,
		AllowGap:    template.AllowGap,
		Enabled:     template.Enabled,
		Description: template.Description,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
}

func ToDomainStage(model *models.RewardStageModel) *domain.RewardStage {
	return &domain.RewardStage{
		ID:           model.ID,
		TemplateID:   model.TemplateID,
		StageOrder:   model.StageOrder,
		StartValue:   model.StartValue,
		EndValue:     model.EndValue,
		TargetValue:  model.TargetValue,
		RewardAmount: model.RewardAmount,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMStage(stage *domain.RewardStage) *models.RewardStageModel {
	return &models.RewardStageModel{
		ID:           stage.ID,
		TemplateID:   stage.TemplateID,
		StageOrder:   stage.StageOrder,
		StartValue:   stage.StartValue,
		EndValue:     stage.EndValue,
		TargetValue:  stage.TargetValue,
		RewardAmount: stage.RewardAmount,
		CreatedAt:    stage.CreatedAt,
	}
}
