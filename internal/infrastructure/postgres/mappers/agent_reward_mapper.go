package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainAgentRewardAmount(model *models.AgentRewardAmountModel) *domain.AgentRewardAmount {
	return &domain.AgentRewardAmount{
		ID:           model.ID,
		AgentID:      model.AgentID,
		TemplateID:   model.TemplateID,
		RewardAmount: model.RewardAmount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMAgentRewardAmount(amount *domain.AgentRewardAmount) *models.AgentRewardAmountModel {
	return &models.AgentRewardAmountModel{
		ID:           amount.ID,
		AgentID:      amount.AgentID,
		TemplateID:   amount.TemplateID,
		RewardAmount: amount.RewardAmount,
		CreatedAt:    amount.CreatedAt,
		UpdatedAt:    amount.UpdatedAt,
	}
}
