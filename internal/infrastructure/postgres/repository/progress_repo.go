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

type DefaultRewardProgressRepository struct {
	db *gorm.DB
}

func NewDefaultRewardProgressRepository(db *gorm.DB) *DefaultRewardProgressRepository {
	return &DefaultRewardProgressRepository{db: db}
}

func (r *DefaultRewardProgressRepository) CreateProgress(progress *domain.TerminalRewardProgress, firstStage *domain.TerminalStageReward) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		progressModel := mappers.ToGORMProgress(progress)
		if err := tx.Create(progressModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateBinding
			}
			return fmt.Errorf("failed to create progress: %w", err)
		}
		progress.ID = progressModel.ID

		firstStage.ProgressID = progressModel.ID
		stageModel := mappers.ToGORMStageReward(firstStage)
		if err := tx.Create(stageModel).Error; err != nil {
			return fmt.Errorf("failed to create first stage: %w", err)
		}
		firstStage.ID = stageModel.ID
		return nil
	})
}

func (r *DefaultRewardProgressRepository) GetProgressByID(progressID int64) (*domain.TerminalRewardProgress, error) {
	var model models.TerminalRewardProgressModel
	if err := r.db.Where("id = ?", progressID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgress(&model), nil
}

func (r *DefaultRewardProgressRepository) GetActiveProgressBySN(terminalSN string) (*domain.TerminalRewardProgress, error) {
	var model models.TerminalRewardProgressModel
	if err := r.db.
		Where("terminal_sn = ? AND status = ?", terminalSN, string(domain.ProgressActive)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgress(&model), nil
}

func (r *DefaultRewardProgressRepository) GetProgressBySN(terminalSN string) (*domain.TerminalRewardProgress, error) {
	var model models.TerminalRewardProgressModel
	if err := r.db.
		Where("terminal_sn = ?", terminalSN).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgress(&model), nil
}

func (r *DefaultRewardProgressRepository) GetStageRewards(progressID int64) ([]*domain.TerminalStageReward, error) {
	var stageModels []models.TerminalStageRewardModel
	if err := r.db.
		Where("progress_id = ?", progressID).
		Order("stage_order").
		Find(&stageModels).Error; err != nil {
		return nil, err
	}
	stages := make([]*domain.TerminalStageReward, len(stageModels))
	for i, stageModel := range stageModels {
		stages[i] = mappers.ToDomainStageReward(&stageModel)
	}
	return stages, nil
}

func (r *DefaultRewardProgressRepository) GetPendingStage(progressID int64) (*domain.TerminalStageReward, error) {
	var model models.TerminalStageRewardModel
	if err := r.db.
		Where("progress_id = ? AND status = ?", progressID, string(domain.StagePending)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainStageReward(&model), nil
}

func (r *DefaultRewardProgressRepository) ApplyStageTransition(transition *domain.StageTransition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.TerminalStageRewardModel{}).
			Where("id = ? AND status = ?", transition.StageID, string(domain.StagePending)).
			Updates(map[string]interface{}{
				"actual_value":  transition.ActualValue,
				"is_achieved":   transition.IsAchieved,
				"reward_amount": transition.RewardAmount,
				"status":        string(transition.StageStatus),
				"updated_at":    time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to resolve stage: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleVersion
		}

		for _, next := range transition.NextStages {
			next.ProgressID = transition.ProgressID
			stageModel := mappers.ToGORMStageReward(next)
			if err := tx.Create(stageModel).Error; err != nil {
				return fmt.Errorf("failed to create stage %d: %w", next.StageOrder, err)
			}
			next.ID = stageModel.ID
		}

		if err := tx.Model(&models.TerminalRewardProgressModel{}).
			Where("id = ?", transition.ProgressID).
			Updates(map[string]interface{}{
				"current_stage":       transition.CurrentStage,
				"last_achieved_stage": transition.LastAchievedStage,
				"status":              string(transition.ProgressStatus),
				"completed_at":        transition.CompletedAt,
				"terminated_at":       transition.TerminatedAt,
				"updated_at":          time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}
		return nil
	})
}

func (r *DefaultRewardProgressRepository) FindExpiredPendingStages(now time.Time, limit int) ([]*domain.TerminalStageReward, error) {
	var stageModels []models.TerminalStageRewardModel
	if err := r.db.Model(&models.TerminalStageRewardModel{}).
		Joins("JOIN terminal_reward_progress ON terminal_reward_progress.id = terminal_stage_rewards.progress_id").
		Where("terminal_stage_rewards.status = ?", string(domain.StagePending)).
		Where("terminal_stage_rewards.stage_end < ?", now).
		Where("terminal_reward_progress.status = ?", string(domain.ProgressActive)).
		Order("terminal_stage_rewards.stage_end").
		Limit(limit).
		Find(&stageModels).Error; err != nil {
		return nil, err
	}
	stages := make([]*domain.TerminalStageReward, len(stageModels))
	for i, stageModel := range stageModels {
		stages[i] = mappers.ToDomainStageReward(&stageModel)
	}
	return stages, nil
}

func (r *DefaultRewardProgressRepository) TerminateProgress(progressID int64, at time.Time) error {
	res := r.db.Model(&models.TerminalRewardProgressModel{}).
		Where("id = ? AND status = ?", progressID, string(domain.ProgressActive)).
		Updates(map[string]interface{}{
			"status":        string(domain.ProgressTerminated),
			"terminated_at": at,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
