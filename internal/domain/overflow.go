package domain

import "time"

type AgentChainInfo struct {
	AgentID    int64  `json:"agent_id"`
	AgentName  string `json:"agent_name"`
	Level      int    `json:"level"`
	RewardRate string `json:"reward_rate"`
}

type AgentChain []AgentChainInfo

// RewardOverflowLog records a distribution run whose agent-chain rates
// summed above 1.0. The distribution engine writes it and skips the payout;
// operators resolve it manually, exactly once.
type RewardOverflowLog struct {
	ID            int64
	TerminalSN    string
	StageRewardID *int64
	AgentChain    AgentChain
	TotalRate     string
	RewardAmount  int64
	ErrorMessage  string
	Resolved      bool
	ResolvedAt    *time.Time
	ResolvedBy    string
	CreatedAt     time.Time
}

type OverflowLogRepository interface {
	CreateOverflowLog(log *RewardOverflowLog) error
	GetOverflowLogByID(logID int64) (*RewardOverflowLog, error)
	ListOverflowLogs(resolved *bool, page, pageSize int) ([]*RewardOverflowLog, int64, error)
	// MarkResolved flips the resolved flag once: ErrAlreadyResolved when the
	// log was resolved before, ErrNotFound when it does not exist.
	MarkResolved(logID int64, resolvedBy string, resolvedAt time.Time) error
}
