package settlement

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

// UpdateRate merges the rate patch into the current configs. One audit row
// per rate code that actually changed; an identical patch writes nothing and
// keeps the version.
func (uc *DefaultSettlementUsecase) UpdateRate(input *settlementdto.UpdateRateInput) (*domain.SettlementPrice, error) {
	if len(input.RateConfigs) == 0 {
		return nil, fmt.Errorf("%w: rate configs are required", domain.ErrValidation)
	}
	if err := validateRateConfigs(input.RateConfigs); err != nil {
		return nil, err
	}

	price, err := uc.priceRepo.GetSettlementPriceByID(input.PriceID)
	if err != nil {
		return nil, err
	}

	merged, changes := diffStringMap(price.RateConfigs, input.RateConfigs)
	if len(changes) == 0 {
		return price, nil
	}

	updated := *price
	updated.RateConfigs = merged
	return uc.commitUpdate(price, updated, domain.ChangeTypeRate, changes, input.Operator)
}
