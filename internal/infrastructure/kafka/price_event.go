package kafka

import "time"

type PriceChangeEvent struct {
	EventID           string    `json:"event_id"`
	SettlementPriceID int64     `json:"settlement_price_id"`
	AgentID           int64     `json:"agent_id"`
	ChannelID         int64     `json:"channel_id"`
	ChangeType        string    `json:"change_type"`
	Version           int       `json:"version"`
	BatchID           string    `json:"batch_id"`
	ChangedFields     []string  `json:"changed_fields"`
	OperatorName      string    `json:"operator_name"`
	CreatedAt         time.Time `json:"created_at"`
}
