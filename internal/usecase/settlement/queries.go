package settlement

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

func (uc *DefaultSettlementUsecase) GetSettlementPrice(priceID int64) (*domain.SettlementPrice, error) {
	return uc.priceRepo.GetSettlementPriceByID(priceID)
}

// GetActiveSettlementPrice resolves the terms in force for a triple; this is
// what the transaction pipeline reads before pricing a settlement.
func (uc *DefaultSettlementUsecase) GetActiveSettlementPrice(agentID, channelID int64, brandCode string) (*domain.SettlementPrice, error) {
	return uc.priceRepo.GetActiveSettlementPrice(agentID, channelID, brandCode)
}

func (uc *DefaultSettlementUsecase) ListSettlementPrices(filter domain.SettlementPriceFilter) (*settlementdto.ListSettlementPricesOutput, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	prices, total, err := uc.priceRepo.ListSettlementPrices(filter)
	if err != nil {
		return nil, err
	}
	return &settlementdto.ListSettlementPricesOutput{
		List:     prices,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
