package domain

import "time"

type ChangeType int16

const (
	ChangeTypeInit       ChangeType = 1
	ChangeTypeRate       ChangeType = 2
	ChangeTypeDeposit    ChangeType = 3
	ChangeTypeSim        ChangeType = 4
	ChangeTypeActivation ChangeType = 5
	ChangeTypeBatch      ChangeType = 6
	ChangeTypeSync       ChangeType = 7
	ChangeTypeHighRate   ChangeType = 8
	ChangeTypeD0Extra    ChangeType = 9
)

func ChangeTypeName(ct ChangeType) string {
	switch ct {
	case ChangeTypeInit:
		return "init"
	case ChangeTypeRate:
		return "rate adjustment"
	case ChangeTypeDeposit:
		return "deposit cashback adjustment"
	case ChangeTypeSim:
		return "sim cashback adjustment"
	case ChangeTypeActivation:
		return "activation reward adjustment"
	case ChangeTypeBatch:
		return "batch adjustment"
	case ChangeTypeSync:
		return "template sync"
	case ChangeTypeHighRate:
		return "high-rate adjustment"
	case ChangeTypeD0Extra:
		return "d0 extra fee adjustment"
	default:
		return "unknown"
	}
}

type ConfigType int16

const (
	ConfigTypeSettlement ConfigType = 1
	ConfigTypeReward     ConfigType = 2
)

// PriceChangeLog is one append-only field-level audit row. Rows written by
// the same mutation share a BatchID. Rows are never updated or deleted.
type PriceChangeLog struct {
	ID                int64
	AgentID           int64
	ChannelID         *int64
	SettlementPriceID *int64
	RewardSettingID   *int64

	ChangeType ChangeType
	ConfigType ConfigType

	FieldName     string
	OldValue      string
	NewValue      string
	ChangeSummary string
	BatchID       string

	OperatorID   int64
	OperatorName string
	Source       string
	IPAddress    string

	CreatedAt time.Time
}

// Operator is the identity performing a mutation, carried by the gateway.
// The kernel records it verbatim and never checks credentials itself.
type Operator struct {
	ID     int64
	Name   string
	Source string
	IP     string
}

type ChangeLogFilter struct {
	AgentID    *int64
	ChannelID  *int64
	ChangeType *ChangeType
	ConfigType *ConfigType
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       int
	PageSize   int
}

type PriceChangeLogRepository interface {
	ListChangeLogs(filter ChangeLogFilter) ([]*PriceChangeLog, int64, error)
	ListBySettlementPrice(settlementPriceID int64, page, pageSize int) ([]*PriceChangeLog, int64, error)
}
