package kafka

import "time"

type StageOutcomeEvent struct {
	EventID        string    `json:"event_id"`
	TerminalSN     string    `json:"terminal_sn"`
	TemplateID     int64     `json:"template_id"`
	StageOrder     int       `json:"stage_order"`
	StageStatus    string    `json:"stage_status"`
	RewardAmount   *int64    `json:"reward_amount"`
	ProgressStatus string    `json:"progress_status"`
	CreatedAt      time.Time `json:"created_at"`
}
