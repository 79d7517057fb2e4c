package repository

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPriceChangeLogRepository struct {
	db *gorm.DB
}

func NewDefaultPriceChangeLogRepository(db *gorm.DB) *DefaultPriceChangeLogRepository {
	return &DefaultPriceChangeLogRepository{db: db}
}

func (r *DefaultPriceChangeLogRepository) ListChangeLogs(filter domain.ChangeLogFilter) ([]*domain.PriceChangeLog, int64, error) {
	query := r.db.Model(&models.PriceChangeLogModel{})
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.ChannelID != nil {
		query = query.Where("channel_id = ?", *filter.ChannelID)
	}
	if filter.ChangeType != nil {
		query = query.Where("change_type = ?", int16(*filter.ChangeType))
	}
	if filter.ConfigType != nil {
		query = query.Where("config_type = ?", int16(*filter.ConfigType))
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	return r.paginate(query, filter.Page, filter.PageSize)
}

func (r *DefaultPriceChangeLogRepository) ListBySettlementPrice(settlementPriceID int64, page, pageSize int) ([]*domain.PriceChangeLog, int64, error) {
	query := r.db.Model(&models.PriceChangeLogModel{}).
		Where("settlement_price_id = ?", settlementPriceID)
	return r.paginate(query, page, pageSize)
}

func (r *DefaultPriceChangeLogRepository) paginate(query *gorm.DB, page, pageSize int) ([]*domain.PriceChangeLog, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	var logModels []models.PriceChangeLogModel
	if err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logModels).Error; err != nil {
		return nil, 0, err
	}

	logs := make([]*domain.PriceChangeLog, len(logModels))
	for i, logModel := range logModels {
		logs[i] = mappers.ToDomainChangeLog(&logModel)
	}
	return logs, total, nil
}
