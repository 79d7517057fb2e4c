package models

import (
	"time"
)

type PriceChangeLogModel struct {
	ID                int64 `gorm:"primaryKey"`
	AgentID           int64 `gorm:"not null;index"`
	ChannelID         *int64
	SettlementPriceID *int64 `gorm:"index"`
	RewardSettingID   *int64 `gorm:"index"`

	ChangeType int16 `gorm:"not null;index"`
	ConfigType int16 `gorm:"not null;index"`

	FieldName     string `gorm:"size:100"`
	OldValue      string `gorm:"type:text"`
	NewValue      string `gorm:"type:text"`
	ChangeSummary string `gorm:"size:500"`
	BatchID       string `gorm:"size:30;index"`

	OperatorID   int64  `gorm:"not null;index"`
	OperatorName string `gorm:"size:100"`
	Source       string `gorm:"size:20;default:'PC'"`
	IPAddress    string `gorm:"size:50"`

	CreatedAt time.Time `gorm:"index"`
}

func (PriceChangeLogModel) TableName() string {
	return "price_change_logs"
}
