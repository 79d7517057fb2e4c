package settlement

import (
	"fmt"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

// CreateSettlementPrice seeds version 1 for an (agent, channel, brand) triple
// with empty configs; the partial updates fill them in afterwards. The Init
// audit row lands in the same transaction as the price row.
func (uc *DefaultSettlementUsecase) CreateSettlementPrice(input *settlementdto.CreateSettlementPriceInput) (*domain.SettlementPrice, error) {
	if input.AgentID <= 0 {
		return nil, fmt.Errorf("%w: agent id is required", domain.ErrValidation)
	}
	if input.ChannelID <= 0 {
		return nil, fmt.Errorf("%w: channel id is required", domain.ErrValidation)
	}

	batchID, err := newBatchID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	price := &domain.SettlementPrice{
		AgentID:          input.AgentID,
		ChannelID:        input.ChannelID,
		TemplateID:       input.TemplateID,
		BrandCode:        input.BrandCode,
		RateConfigs:      domain.RateConfigs{},
		DepositCashbacks: domain.DepositCashbacks{},
		HighRateConfigs:  domain.HighRateConfigs{},
		D0ExtraConfigs:   domain.D0ExtraConfigs{},
		Version:          1,
		Status:           domain.SettlementStatusActive,
		EffectiveAt:      now,
	}
	if input.Operator.ID != 0 {
		operatorID := input.Operator.ID
		price.CreatedBy = &operatorID
	}

	logs := buildChangeLogs(price, domain.ChangeTypeInit, []fieldChange{{
		field:    "settlement_price",
		newValue: "v1",
	}}, batchID, input.Operator)

	if err := uc.priceRepo.CreateSettlementPrice(price, logs); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordPriceUpdate(domain.ChangeTypeName(domain.ChangeTypeInit))
	}
	uc.publishChange(price, domain.ChangeTypeInit, batchID, nil, input.Operator)
	return price, nil
}
