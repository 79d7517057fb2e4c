package settlement

import (
	"fmt"
	"strconv"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

func (uc *DefaultSettlementUsecase) UpdateSim(input *settlementdto.UpdateSimInput) (*domain.SettlementPrice, error) {
	if input.SimFirstCashback < 0 || input.SimSecondCashback < 0 || input.SimThirdPlusCashback < 0 {
		return nil, fmt.Errorf("%w: sim cashbacks must not be negative", domain.ErrValidation)
	}

	price, err := uc.priceRepo.GetSettlementPriceByID(input.PriceID)
	if err != nil {
		return nil, err
	}

	var changes []fieldChange
	if price.SimFirstCashback != input.SimFirstCashback {
		changes = append(changes, simChange("sim_first_cashback", price.SimFirstCashback, input.SimFirstCashback))
	}
	if price.SimSecondCashback != input.SimSecondCashback {
		changes = append(changes, simChange("sim_second_cashback", price.SimSecondCashback, input.SimSecondCashback))
	}
	if price.SimThirdPlusCashback != input.SimThirdPlusCashback {
		changes = append(changes, simChange("sim_third_plus_cashback", price.SimThirdPlusCashback, input.SimThirdPlusCashback))
	}
	if len(changes) == 0 {
		return price, nil
	}

	updated := *price
	updated.SimFirstCashback = input.SimFirstCashback
	updated.SimSecondCashback = input.SimSecondCashback
	updated.SimThirdPlusCashback = input.SimThirdPlusCashback
	return uc.commitUpdate(price, updated, domain.ChangeTypeSim, changes, input.Operator)
}

func simChange(field string, oldValue, newValue int64) fieldChange {
	return fieldChange{
		field:    field,
		oldValue: strconv.FormatInt(oldValue, 10),
		newValue: strconv.FormatInt(newValue, 10),
	}
}
