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

type DefaultSettlementPriceRepository struct {
	db *gorm.DB
}

func NewDefaultSettlementPriceRepository(db *gorm.DB) *DefaultSettlementPriceRepository {
	return &DefaultSettlementPriceRepository{db: db}
}

func (r *DefaultSettlementPriceRepository) CreateSettlementPrice(price *domain.SettlementPrice, logs []*domain.PriceChangeLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SettlementPriceModel{}).
			Where("agent_id = ? AND channel_id = ? AND brand_code = ? AND status = ?",
				price.AgentID, price.ChannelID, price.BrandCode, domain.SettlementStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateActiveConfig
		}

		model := mappers.ToGORMSettlementPrice(price)
		if err := tx.Create(model).Error; err != nil {
			// partial unique index backstop for concurrent creators
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateActiveConfig
			}
			return fmt.Errorf("failed to create settlement price: %w", err)
		}
		price.ID = model.ID

		for _, log := range logs {
			log.SettlementPriceID = &model.ID
			if err := tx.Create(mappers.ToGORMChangeLog(log)).Error; err != nil {
				return fmt.Errorf("failed to create change log: %w", err)
			}
		}
		return nil
	})
}

func (r *DefaultSettlementPriceRepository) GetSettlementPriceByID(priceID int64) (*domain.SettlementPrice, error) {
	var model models.SettlementPriceModel
	if err := r.db.Where("id = ?", priceID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSettlementPrice(&model), nil
}

func (r *DefaultSettlementPriceRepository) GetActiveSettlementPrice(agentID, channelID int64, brandCode string) (*domain.SettlementPrice, error) {
	var model models.SettlementPriceModel
	if err := r.db.
		Where("agent_id = ? AND channel_id = ? AND brand_code = ? AND status = ?",
			agentID, channelID, brandCode, domain.SettlementStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return mappers.ToDomainSettlementPrice(&model), nil
}

func (r *DefaultSettlementPriceRepository) ListSettlementPrices(filter domain.SettlementPriceFilter) ([]*domain.SettlementPrice, int64, error) {
	query := r.db.Model(&models.SettlementPriceModel{})
	if filter.AgentID != nil {
		query = query.Where("agent_id = ?", *filter.AgentID)
	}
	if filter.ChannelID != nil {
		query = query.Where("channel_id = ?", *filter.ChannelID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	var priceModels []models.SettlementPriceModel
	if err := query.
		Order("updated_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&priceModels).Error; err != nil {
		return nil, 0, err
	}

	prices := make([]*domain.SettlementPrice, len(priceModels))
	for i, priceModel := range priceModels {
		prices[i] = mappers.ToDomainSettlementPrice(&priceModel)
	}
	return prices, total, nil
}

// UpdateSettlementPrice writes the new state and the audit rows atomically.
// The update is conditioned on expectedVersion, so a concurrent winner leaves
// the loser with ErrStaleVersion and no partial commit.
func (r *DefaultSettlementPriceRepository) UpdateSettlementPrice(price *domain.SettlementPrice, expectedVersion int, logs []*domain.PriceChangeLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		model := mappers.ToGORMSettlementPrice(price)
		res := tx.Model(&models.SettlementPriceModel{}).
			Where("id = ? AND version = ?", price.ID, expectedVersion).
			Updates(map[string]interface{}{
				"rate_configs":            model.RateConfigs,
				"deposit_cashbacks":       model.DepositCashbacks,
				"sim_first_cashback":      model.SimFirstCashback,
				"sim_second_cashback":     model.SimSecondCashback,
				"sim_third_plus_cashback": model.SimThirdPlusCashback,
				"high_rate_configs":       model.HighRateConfigs,
				"d0_extra_configs":        model.D0ExtraConfigs,
				"version":                 price.Version,
				"updated_by":              model.UpdatedBy,
				"updated_at":              time.Now(),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update settlement price: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrStaleVersion
		}

		for _, log := range logs {
			log.SettlementPriceID = &price.ID
			if err := tx.Create(mappers.ToGORMChangeLog(log)).Error; err != nil {
				return fmt.Errorf("failed to create change log: %w", err)
			}
		}
		return nil
	})
}
