package models

import (
	"time"
)

type RewardTemplateModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null"`
	TimeBasis   string `gorm:"size:20;not null"`
	Dimension   string `gorm:"size:20;not null"`
	TransTypes  string `gorm:"size:100"`
	AmountMin   int64  `gorm:"default:0"`
	AmountMax   *int64
	AllowGap    bool   `gorm:"default:false"`
	Enabled     bool   `gorm:"default:true"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RewardTemplateModel) TableName() string {
	return "reward_templates"
}

type RewardStageModel struct {
	ID           int64 `gorm:"primaryKey"`
	TemplateID   int64 `gorm:"not null;index"`
	StageOrder   int   `gorm:"not null"`
	StartValue   int   `gorm:"not null"`
	EndValue     int   `gorm:"not null"`
	TargetValue  int64 `gorm:"not null"`
	RewardAmount int64 `gorm:"not null"`
	CreatedAt    time.Time
}

func (RewardStageModel) TableName() string {
	return "reward_stages"
}
