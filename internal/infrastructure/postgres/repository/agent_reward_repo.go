package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAgentRewardAmountRepository struct {
	db *gorm.DB
}

func NewDefaultAgentRewardAmountRepository(db *gorm.DB) *DefaultAgentRewardAmountRepository {
	return &DefaultAgentRewardAmountRepository{db: db}
}

func (r *DefaultAgentRewardAmountRepository) GetAmount(agentID, templateID int64) (*domain.AgentRewardAmount, error) {
	var model models.AgentRewardAmountModel
	if err := r.db.Where("agent_id = ? AND template_id = ?", agentID, templateID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainAgentRewardAmount(&model), nil
}

func (r *DefaultAgentRewardAmountRepository) UpsertAmount(amount *domain.AgentRewardAmount, logs []*domain.PriceChangeLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.AgentRewardAmountModel
		err := tx.Where("agent_id = ? AND template_id = ?", amount.AgentID, amount.TemplateID).First(&existing).Error
		switch {
		case err == nil:
			amount.ID = existing.ID
			if err := tx.Model(&models.AgentRewardAmountModel{}).
				Where("id = ?", existing.ID).
				Updates(map[string]interface{}{
					"reward_amount": amount.RewardAmount,
					"updated_at":    time.Now(),
				}).Error; err != nil {
				return fmt.Errorf("failed to update agent reward amount: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			model := mappers.ToGORMAgentRewardAmount(amount)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to create agent reward amount: %w", err)
			}
			amount.ID = model.ID
		default:
			return err
		}

		for _, log := range logs {
			log.RewardSettingID = &amount.ID
			if err := tx.Create(mappers.ToGORMChangeLog(log)).Error; err != nil {
				return fmt.Errorf("failed to create change log: %w", err)
			}
		}
		return nil
	})
}
