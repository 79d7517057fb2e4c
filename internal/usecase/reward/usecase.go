package reward

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

type TemplateUsecase interface {
	CreateTemplate(input *rewarddto.CreateTemplateInput) (*domain.RewardTemplate, error)
	UpdateTemplate(input *rewarddto.UpdateTemplateInput) (*domain.RewardTemplate, error)
	GetTemplate(templateID int64) (*domain.RewardTemplate, error)
	ListTemplates(input *rewarddto.ListTemplatesInput) (*rewarddto.ListTemplatesOutput, error)
	SetTemplateEnabled(templateID int64, enabled bool) error
}

type DefaultTemplateUsecase struct {
	templateRepo domain.RewardTemplateRepository
}

func NewDefaultTemplateUsecase(templateRepo domain.RewardTemplateRepository) *DefaultTemplateUsecase {
	return &DefaultTemplateUsecase{templateRepo: templateRepo}
}

// validateStages enforces the stage-list shape: orders contiguous from 1,
// start <= end, positive targets and rewards, windows strictly increasing.
func validateStages(stages []rewarddto.StageInput) error {
	if len(stages) == 0 {
		return fmt.Errorf("%w: at least one stage is required", domain.ErrValidation)
	}
	byOrder := make(map[int]rewarddto.StageInput, len(stages))
	for _, stage := range stages {
		if _, exists := byOrder[stage.StageOrder]; exists {
			return fmt.Errorf("%w: duplicate stage order %d", domain.ErrValidation, stage.StageOrder)
		}
		byOrder[stage.StageOrder] = stage
	}
	var prev *rewarddto.StageInput
	for order := 1; order <= len(stages); order++ {
		stage, ok := byOrder[order]
		if !ok {
			return fmt.Errorf("%w: stage orders must be contiguous from 1, missing %d", domain.ErrValidation, order)
		}
		if stage.StartValue < 1 {
			return fmt.Errorf("%w: stage %d start value must be >= 1", domain.ErrValidation, order)
		}
		if stage.EndValue < stage.StartValue {
			return fmt.Errorf("%w: stage %d end value must be >= start value", domain.ErrValidation, order)
		}
		if stage.TargetValue <= 0 {
			return fmt.Errorf("%w: stage %d target value must be positive", domain.ErrValidation, order)
		}
		if stage.RewardAmount <= 0 {
			return fmt.Errorf("%w: stage %d reward amount must be positive", domain.ErrValidation, order)
		}
		if prev != nil && stage.StartValue <= prev.EndValue {
			return fmt.Errorf("%w: stage %d window overlaps stage %d", domain.ErrValidation, order, order-1)
		}
		s := stage
		prev = &s
	}
	return nil
}

func toDomainStages(templateID int64, inputs []rewarddto.StageInput) []*domain.RewardStage {
	stages := make([]*domain.RewardStage, len(inputs))
	for i, input := range inputs {
		stages[i] = &domain.RewardStage{
			TemplateID:   templateID,
			StageOrder:   input.StageOrder,
			StartValue:   input.StartValue,
			EndValue:     input.EndValue,
			TargetValue:  input.TargetValue,
			RewardAmount: input.RewardAmount,
		}
	}
	return stages
}
