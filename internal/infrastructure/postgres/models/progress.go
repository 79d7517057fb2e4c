package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SnapshotStage struct {
	ID           int64 `json:"id"`
	TemplateID   int64 `json:"template_id"`
	StageOrder   int   `json:"stage_order"`
	StartValue   int   `json:"start_value"`
	EndValue     int   `json:"end_value"`
	TargetValue  int64 `json:"target_value"`
	RewardAmount int64 `json:"reward_amount"`
}

// TemplateSnapshot is the JSONB column holding the template as bound.
type TemplateSnapshot struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	TimeBasis  string          `json:"time_basis"`
	Dimension  string          `json:"dimension"`
	TransTypes string          `json:"trans_types"`
	AmountMin  int64           `json:"amount_min"`
	AmountMax  *int64          `json:"amount_max"`
	AllowGap   bool            `json:"allow_gap"`
	Stages     []SnapshotStage `json:"stages"`
}

func (t *TemplateSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into TemplateSnapshot", value)
	}

	return json.Unmarshal(bytes, t)
}

func (t TemplateSnapshot) Value() (driver.Value, error) {
	return json.Marshal(t)
}

type TerminalRewardProgressModel struct {
	ID                int64            `gorm:"primaryKey"`
	TerminalSN        string           `gorm:"size:50;not null;uniqueIndex:idx_terminal_template"`
	TemplateID        int64            `gorm:"not null;uniqueIndex:idx_terminal_template;index"`
	TemplateSnapshot  TemplateSnapshot `gorm:"type:jsonb;not null"`
	BindAgentID       int64            `gorm:"not null;index"`
	BindTime          time.Time        `gorm:"not null;index"`
	CurrentStage      int              `gorm:"default:1"`
	LastAchievedStage int              `gorm:"default:0"`
	Status            string           `gorm:"size:20;default:'active';index"`
	CompletedAt       *time.Time
	TerminatedAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TerminalRewardProgressModel) TableName() string {
	return "terminal_reward_progress"
}

type TerminalStageRewardModel struct {
	ID           int64     `gorm:"primaryKey"`
	ProgressID   int64     `gorm:"not null;index"`
	TerminalSN   string    `gorm:"size:50;not null;index"`
	StageOrder   int       `gorm:"not null"`
	StageStart   time.Time `gorm:"not null"`
	StageEnd     time.Time `gorm:"not null;index"`
	TargetValue  int64     `gorm:"not null"`
	ActualValue  int64     `gorm:"default:0"`
	IsAchieved   bool      `gorm:"default:false"`
	RewardAmount *int64
	Status       string `gorm:"size:20;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TerminalStageRewardModel) TableName() string {
	return "terminal_stage_rewards"
}
