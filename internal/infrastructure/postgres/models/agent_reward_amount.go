package models

import (
	"time"
)

type AgentRewardAmountModel struct {
	ID           int64 `gorm:"primaryKey"`
	AgentID      int64 `gorm:"not null;uniqueIndex:idx_agent_template"`
	TemplateID   int64 `gorm:"not null;uniqueIndex:idx_agent_template"`
	RewardAmount int64 `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AgentRewardAmountModel) TableName() string {
	return "agent_reward_amounts"
}
