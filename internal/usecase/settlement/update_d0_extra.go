package settlement

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

func (uc *DefaultSettlementUsecase) UpdateD0Extra(input *settlementdto.UpdateD0ExtraInput) (*domain.SettlementPrice, error) {
	if len(input.D0ExtraConfigs) == 0 {
		return nil, fmt.Errorf("%w: d0 extra configs are required", domain.ErrValidation)
	}
	for transType, fee := range input.D0ExtraConfigs {
		if transType == "" {
			return nil, fmt.Errorf("%w: trans type must not be empty", domain.ErrValidation)
		}
		if fee < 0 {
			return nil, fmt.Errorf("%w: d0 extra fee for %s must not be negative", domain.ErrValidation, transType)
		}
	}

	price, err := uc.priceRepo.GetSettlementPriceByID(input.PriceID)
	if err != nil {
		return nil, err
	}

	merged, changes := diffInt64Map(price.D0ExtraConfigs, input.D0ExtraConfigs)
	if len(changes) == 0 {
		return price, nil
	}

	updated := *price
	updated.D0ExtraConfigs = merged
	return uc.commitUpdate(price, updated, domain.ChangeTypeD0Extra, changes, input.Operator)
}
