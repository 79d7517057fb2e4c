package domain

import "time"

// AgentRewardAmount is the per-agent flat override used by the differential
// distribution model: when set, it replaces the stage reward amount for
// terminals bound by that agent under the given template.
type AgentRewardAmount struct {
	ID           int64
	AgentID      int64
	TemplateID   int64
	RewardAmount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AgentRewardAmountRepository interface {
	GetAmount(agentID, templateID int64) (*AgentRewardAmount, error)
	// UpsertAmount persists the override and the audit rows in one transaction.
	UpsertAmount(amount *AgentRewardAmount, logs []*PriceChangeLog) error
}
