package settlement

import (
	"encoding/json"
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

// UpdateDeposit replaces the whole deposit cashback tier list. The audit row
// carries both lists serialized, so the exact old state round-trips.
func (uc *DefaultSettlementUsecase) UpdateDeposit(input *settlementdto.UpdateDepositInput) (*domain.SettlementPrice, error) {
	if err := validateDepositCashbacks(input.DepositCashbacks); err != nil {
		return nil, err
	}

	price, err := uc.priceRepo.GetSettlementPriceByID(input.PriceID)
	if err != nil {
		return nil, err
	}

	oldValue, err := json.Marshal(price.DepositCashbacks)
	if err != nil {
		return nil, err
	}
	newValue, err := json.Marshal(input.DepositCashbacks)
	if err != nil {
		return nil, err
	}
	if string(oldValue) == string(newValue) {
		return price, nil
	}

	updated := *price
	updated.DepositCashbacks = input.DepositCashbacks
	changes := []fieldChange{{
		field:    "deposit_cashbacks",
		oldValue: string(oldValue),
		newValue: string(newValue),
	}}
	return uc.commitUpdate(price, updated, domain.ChangeTypeDeposit, changes, input.Operator)
}

func validateDepositCashbacks(tiers domain.DepositCashbacks) error {
	var prevDeposit int64
	for i, tier := range tiers {
		if tier.DepositAmount <= 0 {
			return fmt.Errorf("%w: tier %d deposit amount must be positive", domain.ErrValidation, i+1)
		}
		if tier.CashbackAmount < 0 {
			return fmt.Errorf("%w: tier %d cashback amount must not be negative", domain.ErrValidation, i+1)
		}
		if tier.DepositAmount <= prevDeposit {
			return fmt.Errorf("%w: tier deposit amounts must be strictly increasing", domain.ErrValidation)
		}
		prevDeposit = tier.DepositAmount
	}
	return nil
}
