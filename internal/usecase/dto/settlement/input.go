package settlement

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type CreateSettlementPriceInput struct {
	AgentID    int64
	ChannelID  int64
	TemplateID *int64
	BrandCode  string
	Operator   domain.Operator
}

type UpdateRateInput struct {
	PriceID     int64
	RateConfigs domain.RateConfigs
	Operator    domain.Operator
}

type UpdateDepositInput struct {
	PriceID          int64
	DepositCashbacks domain.DepositCashbacks
	Operator         domain.Operator
}

type UpdateSimInput struct {
	PriceID              int64
	SimFirstCashback     int64
	SimSecondCashback    int64
	SimThirdPlusCashback int64
	Operator             domain.Operator
}

type UpdateHighRateInput struct {
	PriceID         int64
	HighRateConfigs domain.HighRateConfigs
	Operator        domain.Operator
}

type UpdateD0ExtraInput struct {
	PriceID        int64
	D0ExtraConfigs domain.D0ExtraConfigs
	Operator       domain.Operator
}
