package reward

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type StageInput struct {
	StageOrder   int
	StartValue   int
	EndValue     int
	TargetValue  int64
	RewardAmount int64
}

type CreateTemplateInput struct {
	Name        string
	TimeBasis   domain.TimeBasis
	Dimension   domain.Dimension
	TransTypes  string
	AmountMin   int64
	AmountMax   *int64
	AllowGap    bool
	Description string
	Stages      []StageInput
}

type UpdateTemplateInput struct {
	TemplateID  int64
	Name        *string
	TransTypes  *string
	AmountMin   *int64
	AmountMax   *int64
	AllowGap    *bool
	Enabled     *bool
	Description *string
	// Stages replaces the whole stage list when non-nil.
	Stages []StageInput
}

type ListTemplatesInput struct {
	Enabled  *bool
	Page     int
	PageSize int
}

type SetAgentAmountInput struct {
	AgentID      int64
	TemplateID   int64
	RewardAmount int64
	Operator     domain.Operator
}
