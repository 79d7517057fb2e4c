package domain

import "time"

// RateConfigs maps a rate code (credit_rate, debit_rate, ...) to a decimal
// string. Rates never travel as floats.
type RateConfigs map[string]string

type DepositCashbackItem struct {
	DepositAmount  int64 `json:"deposit_amount"`
	CashbackAmount int64 `json:"cashback_amount"`
}

type DepositCashbacks []DepositCashbackItem

// HighRateConfigs maps a rate code to the decimal surcharge rate applied on
// high-rate transactions.
type HighRateConfigs map[string]string

// D0ExtraConfigs maps a trans type to the extra per-transaction fee (cents)
// charged for same-day (P+0) settlement.
type D0ExtraConfigs map[string]int64

const (
	SettlementStatusDisabled int16 = 0
	SettlementStatusActive   int16 = 1
)

// SettlementPrice is the versioned commercial-terms row for one
// (agent, channel, brand) triple. At most one row per triple is active;
// every successful update bumps Version by exactly one.
type SettlementPrice struct {
	ID         int64
	AgentID    int64
	ChannelID  int64
	TemplateID *int64
	BrandCode  string

	RateConfigs RateConfigs

	DepositCashbacks DepositCashbacks

	SimFirstCashback     int64
	SimSecondCashback    int64
	SimThirdPlusCashback int64

	HighRateConfigs HighRateConfigs
	D0ExtraConfigs  D0ExtraConfigs

	Version     int
	Status      int16
	EffectiveAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   *int64
	UpdatedBy   *int64
}

type SettlementPriceFilter struct {
	AgentID   *int64
	ChannelID *int64
	Status    *int16
	Page      int
	PageSize  int
}

type SettlementPriceRepository interface {
	// CreateSettlementPrice inserts the version-1 row and its Init audit rows
	// in one transaction; ErrDuplicateActiveConfig when an active row for the
	// same (agent, channel, brand) already exists.
	CreateSettlementPrice(price *SettlementPrice, logs []*PriceChangeLog) error
	GetSettlementPriceByID(priceID int64) (*SettlementPrice, error)
	GetActiveSettlementPrice(agentID, channelID int64, brandCode string) (*SettlementPrice, error)
	ListSettlementPrices(filter SettlementPriceFilter) ([]*SettlementPrice, int64, error)
	// UpdateSettlementPrice persists the new state and the audit rows in one
	// transaction, conditioned on the row still carrying expectedVersion;
	// ErrStaleVersion when a concurrent writer won.
	UpdateSettlementPrice(price *SettlementPrice, expectedVersion int, logs []*PriceChangeLog) error
}
