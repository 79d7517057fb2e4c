package reward

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

// UpdateTemplate applies the provided fields and, when a stage list is given,
// replaces the whole stage set. Progress already in flight keeps evaluating
// against its bind-time snapshot.
func (uc *DefaultTemplateUsecase) UpdateTemplate(input *rewarddto.UpdateTemplateInput) (*domain.RewardTemplate, error) {
	template, err := uc.templateRepo.GetTemplateByID(input.TemplateID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: template name is required", domain.ErrValidation)
		}
		template.Name = *input.Name
	}
	if input.TransTypes != nil {
		template.TransTypes = *input.TransTypes
	}
	if input.AmountMin != nil {
		template.AmountMin = *input.AmountMin
	}
	if input.AmountMax != nil {
		template.AmountMax = input.AmountMax
	}
	if input.AllowGap != nil {
		template.AllowGap = *input.AllowGap
	}
	if input.Enabled != nil {
		template.Enabled = *input.Enabled
	}
	if input.Description != nil {
		template.Description = *input.Description
	}
	if template.AmountMax != nil && *template.AmountMax < template.AmountMin {
		return nil, fmt.Errorf("%w: amount max must be >= amount min", domain.ErrValidation)
	}

	replaceStages := input.Stages != nil
	if replaceStages {
		if err := validateStages(input.Stages); err != nil {
			return nil, err
		}
		template.Stages = toDomainStages(template.ID, input.Stages)
	}

	if err := uc.templateRepo.ReplaceTemplate(template, replaceStages); err != nil {
		return nil, err
	}
	return template, nil
}
