package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RateConfigs maps rate code -> decimal string, stored as JSONB.
type RateConfigs map[string]string

func (r *RateConfigs) Scan(value interface{}) error {
	if value == nil {
		*r = make(RateConfigs)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into RateConfigs", value)
	}

	if len(bytes) == 0 || string(bytes) == "{}" {
		*r = make(RateConfigs)
		return nil
	}

	return json.Unmarshal(bytes, r)
}

func (r RateConfigs) Value() (driver.Value, error) {
	if r == nil {
		return "{}", nil
	}
	return json.Marshal(r)
}

type DepositCashbackItem struct {
	DepositAmount  int64 `json:"deposit_amount"`
	CashbackAmount int64 `json:"cashback_amount"`
}

type DepositCashbacks []DepositCashbackItem

func (d *DepositCashbacks) Scan(value interface{}) error {
	if value == nil {
		*d = make(DepositCashbacks, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into DepositCashbacks", value)
	}

	if len(bytes) == 0 || string(bytes) == "[]" {
		*d = make(DepositCashbacks, 0)
		return nil
	}

	return json.Unmarshal(bytes, d)
}

func (d DepositCashbacks) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	return json.Marshal(d)
}

// ExtraFees maps trans type -> extra fee in cents, stored as JSONB.
type ExtraFees map[string]int64

func (e *ExtraFees) Scan(value interface{}) error {
	if value == nil {
		*e = make(ExtraFees)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan type %T into ExtraFees", value)
	}

	if len(bytes) == 0 || string(bytes) == "{}" {
		*e = make(ExtraFees)
		return nil
	}

	return json.Unmarshal(bytes, e)
}

func (e ExtraFees) Value() (driver.Value, error) {
	if e == nil {
		return "{}", nil
	}
	return json.Marshal(e)
}

type SettlementPriceModel struct {
	ID         int64 `gorm:"primaryKey"`
	AgentID    int64 `gorm:"not null;index"`
	ChannelID  int64 `gorm:"not null;index"`
	TemplateID *int64
	BrandCode  string `gorm:"size:32;default:''"`

	RateConfigs RateConfigs `gorm:"type:jsonb;default:'{}'"`

	DepositCashbacks DepositCashbacks `gorm:"type:jsonb;default:'[]'"`

	SimFirstCashback     int64 `gorm:"default:0"`
	SimSecondCashback    int64 `gorm:"default:0"`
	SimThirdPlusCashback int64 `gorm:"default:0"`

	HighRateConfigs RateConfigs `gorm:"type:jsonb;default:'{}'"`
	D0ExtraConfigs  ExtraFees   `gorm:"type:jsonb;default:'{}'"`

	Version     int       `gorm:"default:1"`
	Status      int16     `gorm:"default:1;index"`
	EffectiveAt time.Time `gorm:"default:now()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   *int64
	UpdatedBy   *int64
}

func (SettlementPriceModel) TableName() string {
	return "settlement_prices"
}
