package domain

import "time"

type TimeBasis string

const (
	TimeBasisDays   TimeBasis = "days"
	TimeBasisMonths TimeBasis = "months"
)

type Dimension string

const (
	DimensionAmount Dimension = "amount"
	DimensionCount  Dimension = "count"
)

// RewardTemplate is a staged reward program. Stage windows are measured in
// days or calendar months from the terminal's bind time, targets in cents
// (amount dimension) or transaction count (count dimension).
type RewardTemplate struct {
	ID          int64
	Name        string
	TimeBasis   TimeBasis
	Dimension   Dimension
	TransTypes  string
	AmountMin   int64
	AmountMax   *int64
	AllowGap    bool
	Enabled     bool
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Stages []*RewardStage
}

type RewardStage struct {
	ID           int64
	TemplateID   int64
	StageOrder   int
	StartValue   int
	EndValue     int
	TargetValue  int64
	RewardAmount int64
	CreatedAt    time.Time
}

type RewardTemplateRepository interface {
	CreateTemplate(template *RewardTemplate) error
	ReplaceTemplate(template *RewardTemplate, replaceStages bool) error
	GetTemplateByID(templateID int64) (*RewardTemplate, error)
	ListTemplates(enabled *bool, page, pageSize int) ([]*RewardTemplate, int64, error)
	SetTemplateEnabled(templateID int64, enabled bool) error
}
