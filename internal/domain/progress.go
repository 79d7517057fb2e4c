package domain

import "time"

type RewardProgressStatus string

const (
	ProgressActive     RewardProgressStatus = "active"
	ProgressCompleted  RewardProgressStatus = "completed"
	ProgressTerminated RewardProgressStatus = "terminated"
)

type StageRewardStatus string

const (
	StagePending    StageRewardStatus = "pending"
	StageAchieved   StageRewardStatus = "achieved"
	StageFailed     StageRewardStatus = "failed"
	StageGapBlocked StageRewardStatus = "gap_blocked"
)

// TemplateSnapshot is the template as it was at bind time. Progress is always
// evaluated against the snapshot, so later template edits never affect
// terminals already in flight.
type TemplateSnapshot struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	TimeBasis  TimeBasis      `json:"time_basis"`
	Dimension  Dimension      `json:"dimension"`
	TransTypes string         `json:"trans_types"`
	AmountMin  int64          `json:"amount_min"`
	AmountMax  *int64         `json:"amount_max"`
	AllowGap   bool           `json:"allow_gap"`
	Stages     []*RewardStage `json:"stages"`
}

func (s *TemplateSnapshot) Stage(order int) *RewardStage {
	for _, stage := range s.Stages {
		if stage.StageOrder == order {
			return stage
		}
	}
	return nil
}

type TerminalRewardProgress struct {
	ID                int64
	TerminalSN        string
	TemplateID        int64
	TemplateSnapshot  TemplateSnapshot
	BindAgentID       int64
	BindTime          time.Time
	CurrentStage      int
	LastAchievedStage int
	Status            RewardProgressStatus
	CompletedAt       *time.Time
	TerminatedAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	StageRewards []*TerminalStageReward
}

type TerminalStageReward struct {
	ID           int64
	ProgressID   int64
	TerminalSN   string
	StageOrder   int
	StageStart   time.Time
	StageEnd     time.Time
	TargetValue  int64
	ActualValue  int64
	IsAchieved   bool
	RewardAmount *int64
	Status       StageRewardStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StageTransition carries one atomic step of the progress state machine:
// the resolution of the active stage, the stage records to materialize next,
// and the new progress head. The stage update is conditioned on the record
// still being pending, so concurrent advances cannot cross the same stage
// boundary twice.
type StageTransition struct {
	StageID      int64
	ActualValue  int64
	IsAchieved   bool
	StageStatus  StageRewardStatus
	RewardAmount *int64

	NextStages []*TerminalStageReward

	ProgressID        int64
	CurrentStage      int
	LastAchievedStage int
	ProgressStatus    RewardProgressStatus
	CompletedAt       *time.Time
	TerminatedAt      *time.Time
}

type RewardProgressRepository interface {
	// CreateProgress inserts the progress row and its first pending stage in
	// one transaction. A binding for the same (terminal, template) pair maps
	// to ErrDuplicateBinding.
	CreateProgress(progress *TerminalRewardProgress, firstStage *TerminalStageReward) error
	GetProgressByID(progressID int64) (*TerminalRewardProgress, error)
	GetActiveProgressBySN(terminalSN string) (*TerminalRewardProgress, error)
	GetProgressBySN(terminalSN string) (*TerminalRewardProgress, error)
	GetStageRewards(progressID int64) ([]*TerminalStageReward, error)
	GetPendingStage(progressID int64) (*TerminalStageReward, error)
	// ApplyStageTransition commits the transition atomically; ErrStaleVersion
	// when the stage record is no longer pending.
	ApplyStageTransition(transition *StageTransition) error
	// FindExpiredPendingStages returns pending stages of active progress
	// whose window closed before now.
	FindExpiredPendingStages(now time.Time, limit int) ([]*TerminalStageReward, error)
	TerminateProgress(progressID int64, at time.Time) error
}
