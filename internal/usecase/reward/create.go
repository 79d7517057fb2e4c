package reward

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

func (uc *DefaultTemplateUsecase) CreateTemplate(input *rewarddto.CreateTemplateInput) (*domain.RewardTemplate, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: template name is required", domain.ErrValidation)
	}
	if input.TimeBasis != domain.TimeBasisDays && input.TimeBasis != domain.TimeBasisMonths {
		return nil, fmt.Errorf("%w: time basis must be days or months", domain.ErrValidation)
	}
	if input.Dimension != domain.DimensionAmount && input.Dimension != domain.DimensionCount {
		return nil, fmt.Errorf("%w: dimension must be amount or count", domain.ErrValidation)
	}
	if input.AmountMin < 0 {
		return nil, fmt.Errorf("%w: amount min must not be negative", domain.ErrValidation)
	}
	if input.AmountMax != nil && *input.AmountMax < input.AmountMin {
		return nil, fmt.Errorf("%w: amount max must be >= amount min", domain.ErrValidation)
	}
	if err := validateStages(input.Stages); err != nil {
		return nil, err
	}

	template := &domain.RewardTemplate{
		Name:        input.Name,
		TimeBasis:   input.TimeBasis,
		Dimension:   input.Dimension,
		TransTypes:  input.TransTypes,
		AmountMin:   input.AmountMin,
		AmountMax:   input.AmountMax,
		AllowGap:    input.AllowGap,
		Enabled:     true,
		Description: input.Description,
	}
	template.Stages = toDomainStages(0, input.Stages)

	if err := uc.templateRepo.CreateTemplate(template); err != nil {
		return nil, err
	}
	return template, nil
}
