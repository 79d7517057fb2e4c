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

type DefaultOverflowLogRepository struct {
	db *gorm.DB
}

func NewDefaultOverflowLogRepository(db *gorm.DB) *DefaultOverflowLogRepository {
	return &DefaultOverflowLogRepository{db: db}
}

func (r *DefaultOverflowLogRepository) CreateOverflowLog(log *domain.RewardOverflowLog) error {
	model := mappers.ToGORMOverflowLog(log)
	if err := r.db.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create overflow log: %w", err)
	}
	log.ID = model.ID
	return nil
}

func (r *DefaultOverflowLogRepository) GetOverflowLogByID(logID int64) (*domain.RewardOverflowLog, error) {
	var model models.RewardOverflowLogModel
	if err := r.db.Where("id = ?", logID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOverflowLog(&model), nil
}

func (r *DefaultOverflowLogRepository) ListOverflowLogs(resolved *bool, page, pageSize int) ([]*domain.RewardOverflowLog, int64, error) {
	query := r.db.Model(&models.RewardOverflowLogModel{})
	if resolved != nil {
		query = query.Where("resolved = ?", *resolved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	var logModels []models.RewardOverflowLogModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*domain.RewardOverflowLog, len(logModels))
	for i, logModel := range logModels {
		logs[i] = mappers.ToDomainOverflowLog(&logModel)
	}
	return logs, total, nil
}

func (r *DefaultOverflowLogRepository) MarkResolved(logID int64, resolvedBy string, resolvedAt time.Time) error {
	res := r.db.Model(&models.RewardOverflowLogModel{}).
		Where("id = ? AND resolved = false", logID).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolved_at": resolvedAt,
			"resolved_by": resolvedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var model models.RewardOverflowLogModel
		if err := r.db.Where("id = ?", logID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		return domain.ErrAlreadyResolved
	}
	return nil
}
