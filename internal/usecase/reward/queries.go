package reward

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

func (uc *DefaultTemplateUsecase) GetTemplate(templateID int64) (*domain.RewardTemplate, error) {
	return uc.templateRepo.GetTemplateByID(templateID)
}

func (uc *DefaultTemplateUsecase) ListTemplates(input *rewarddto.ListTemplatesInput) (*rewarddto.ListTemplatesOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	templates, total, err := uc.templateRepo.ListTemplates(input.Enabled, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &rewarddto.ListTemplatesOutput{
		List:     templates,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (uc *DefaultTemplateUsecase) SetTemplateEnabled(templateID int64, enabled bool) error {
	return uc.templateRepo.SetTemplateEnabled(templateID, enabled)
}
