package overflow

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/metrics"
)

type OverflowUsecase interface {
	Record(log *domain.RewardOverflowLog) (*domain.RewardOverflowLog, error)
	ListOverflowLogs(resolved *bool, page, pageSize int) ([]*domain.RewardOverflowLog, int64, error)
	Resolve(logID int64, resolvedBy string) (*domain.RewardOverflowLog, error)
}

type DefaultOverflowUsecase struct {
	overflowRepo domain.OverflowLogRepository
	metrics      *metrics.SettlementMetrics
}

func NewDefaultOverflowUsecase(overflowRepo domain.OverflowLogRepository, settlementMetrics *metrics.SettlementMetrics) *DefaultOverflowUsecase {
	return &DefaultOverflowUsecase{
		overflowRepo: overflowRepo,
		metrics:      settlementMetrics,
	}
}

func (uc *DefaultOverflowUsecase) ListOverflowLogs(resolved *bool, page, pageSize int) ([]*domain.RewardOverflowLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.overflowRepo.ListOverflowLogs(resolved, page, pageSize)
}
