package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type AgentChainInfo struct {
	AgentID    int64  `json:"agent_id"`
	AgentName  string `json:"agent_name"`
	Level      int    `json:"level"`
	RewardRate string `json:"reward_rate"`
}

type AgentChain []AgentChainInfo

func (a *AgentChain) Scan(value interface{}) error {
	if value == nil {
		*a = make(AgentChain, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into AgentChain", value)
	}

	return json.Unmarshal(bytes, a)
}

func (a AgentChain) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

type RewardOverflowLogModel struct {
	ID            int64  `gorm:"primaryKey"`
	TerminalSN    string `gorm:"size:50;not null;index"`
	StageRewardID *int64
	AgentChain    AgentChain `gorm:"type:jsonb;not null"`
	TotalRate     string     `gorm:"type:decimal(6,4)"`
	RewardAmount  int64      `gorm:"not null"`
	ErrorMessage  string     `gorm:"type:text"`
	Resolved      bool       `gorm:"default:false;index"`
	ResolvedAt    *time.Time
	ResolvedBy    string    `gorm:"size:50"`
	CreatedAt     time.Time `gorm:"index"`
}

func (RewardOverflowLogModel) TableName() string {
	return "reward_overflow_logs"
}
