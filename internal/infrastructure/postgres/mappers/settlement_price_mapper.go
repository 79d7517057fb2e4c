package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainSettlementPrice(model *models.SettlementPriceModel) *domain.SettlementPrice {
	cashbacks := make(domain.DepositCashbacks, len(model.DepositCashbacks))
	for i, item := range model.DepositCashbacks {
		cashbacks[i] = domain.DepositCashbackItem{
			DepositAmount:  item.DepositAmount,
			CashbackAmount: item.CashbackAmount,
		}
	}
	return &domain.SettlementPrice{
		ID:                   model.ID,
		AgentID:              model.AgentID,
		ChannelID:            model.ChannelID,
		TemplateID:           model.TemplateID,
		BrandCode:            model.BrandCode,
		RateConfigs:          domain.RateConfigs(model.RateConfigs),
		DepositCashbacks:     cashbacks,
		SimFirstCashback:     model.SimFirstCashback,
		SimSecondCashback:    model.SimSecondCashback,
		SimThirdPlusCashback: model.SimThirdPlusCashback,
		HighRateConfigs:      domain.HighRateConfigs(model.HighRateConfigs),
		D0ExtraConfigs:       domain.D0ExtraConfigs(model.D0ExtraConfigs),
		Version:              model.Version,
		Status:               model.Status,
		EffectiveAt:          model.EffectiveAt,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
		CreatedBy:            model.CreatedBy,
		UpdatedBy:            model.UpdatedBy,
	}
}

func ToGORMSettlementPrice(price *domain.SettlementPrice) *models.SettlementPriceModel {
	cashbacks := make(models.DepositCashbacks, len(price.DepositCashbacks))
	for i, item := range price.DepositCashbacks {
		cashbacks[i] = models.DepositCashbackItem{
			DepositAmount:  item.DepositAmount,
			CashbackAmount: item.CashbackAmount,
		}
	}
	return &models.SettlementPriceModel{
		ID:                   price.ID,
		AgentID:              price.AgentID,
		ChannelID:            price.ChannelID,
		TemplateID:           price.TemplateID,
		BrandCode:            price.BrandCode,
		RateConfigs:          models.RateConfigs(price.RateConfigs),
		DepositCashbacks:     cashbacks,
		SimFirstCashback:     price.SimFirstCashback,
		SimSecondCashback:    price.SimSecondCashback,
		SimThirdPlusCashback: price.SimThirdPlusCashback,
		HighRateConfigs:      models.RateConfigs(price.HighRateConfigs),
		D0ExtraConfigs:       models.ExtraFees(price.D0ExtraConfigs),
		Version:              price.Version,
		Status:               price.Status,
		EffectiveAt:          price.EffectiveAt,
		CreatedAt:            price.CreatedAt,
		UpdatedAt:            price.UpdatedAt,
		CreatedBy:            price.CreatedBy,
		UpdatedBy:            price.UpdatedBy,
	}
}
