package progress

import (
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	publisher "github.com/lunarpay/settlement-reward-service/internal/infrastructure/kafka"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/metrics"
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

type ProgressUsecase interface {
	InitProgress(input *progressdto.InitProgressInput) (*domain.TerminalRewardProgress, error)
	Advance(input *progressdto.AdvanceInput) (*progressdto.AdvanceOutput, error)
	SweepExpired(batch int) error
	GetProgress(terminalSN string) (*progressdto.ProgressDetailOutput, error)
	Terminate(terminalSN string) error
}

type DefaultProgressUsecase struct {
	progressRepo    domain.RewardProgressRepository
	templateRepo    domain.RewardTemplateRepository
	agentRewardRepo domain.AgentRewardAmountRepository
	kafkaPublisher  *publisher.KafkaPublisher
	metrics         *metrics.SettlementMetrics
}

func NewDefaultProgressUsecase(
	progressRepo domain.RewardProgressRepository,
	templateRepo domain.RewardTemplateRepository,
	agentRewardRepo domain.AgentRewardAmountRepository,
	kafkaPublisher *publisher.KafkaPublisher,
	settlementMetrics *metrics.SettlementMetrics,
) *DefaultProgressUsecase {
	return &DefaultProgressUsecase{
		progressRepo:    progressRepo,
		templateRepo:    templateRepo,
		agentRewardRepo: agentRewardRepo,
		kafkaPublisher:  kafkaPublisher,
		metrics:         settlementMetrics,
	}
}

// stageWindow computes the [start, end) window of one stage relative to the
// bind time. Days: day N is the bind day plus N-1. Months: calendar months
// via AddDate, so a Jan 31 bind rolls over the way time.AddDate does.
func stageWindow(bindTime time.Time, basis domain.TimeBasis, startValue, endValue int) (time.Time, time.Time) {
	base := time.Date(bindTime.Year(), bindTime.Month(), bindTime.Day(), 0, 0, 0, 0, bindTime.Location())
	if basis == domain.TimeBasisMonths {
		return base.AddDate(0, startValue-1, 0), base.AddDate(0, endValue, 0)
	}
	return base.AddDate(0, 0, startValue-1), base.AddDate(0, 0, endValue)
}

func newStageRecord(progress *domain.TerminalRewardProgress, def *domain.RewardStage) *domain.TerminalStageReward {
	start, end := stageWindow(progress.BindTime, progress.TemplateSnapshot.TimeBasis, def.StartValue, def.EndValue)
	return &domain.TerminalStageReward{
		ProgressID:  progress.ID,
		TerminalSN:  progress.TerminalSN,
		StageOrder:  def.StageOrder,
		StageStart:  start,
		StageEnd:    end,
		TargetValue: def.TargetValue,
		Status:      domain.StagePending,
	}
}

func maxStageOrder(snapshot *domain.TemplateSnapshot) int {
	max := 0
	for _, stage := range snapshot.Stages {
		if stage.StageOrder > max {
			max = stage.StageOrder
		}
	}
	return max
}
