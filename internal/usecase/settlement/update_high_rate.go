package settlement

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

func (uc *DefaultSettlementUsecase) UpdateHighRate(input *settlementdto.UpdateHighRateInput) (*domain.SettlementPrice, error) {
	if len(input.HighRateConfigs) == 0 {
		return nil, fmt.Errorf("%w: high rate configs are required", domain.ErrValidation)
	}
	if err := validateRateConfigs(input.HighRateConfigs); err != nil {
		return nil, err
	}

	price, err := uc.priceRepo.GetSettlementPriceByID(input.PriceID)
	if err != nil {
		return nil, err
	}

	merged, changes := diffStringMap(price.HighRateConfigs, input.HighRateConfigs)
	if len(changes) == 0 {
		return price, nil
	}

	updated := *price
	updated.HighRateConfigs = merged
	return uc.commitUpdate(price, updated, domain.ChangeTypeHighRate, changes, input.Operator)
}
