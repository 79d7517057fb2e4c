package changelog

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type ChangeLogUsecase interface {
	ListChangeLogs(filter domain.ChangeLogFilter) ([]*domain.PriceChangeLog, int64, error)
	ListBySettlementPrice(settlementPriceID int64, page, pageSize int) ([]*domain.PriceChangeLog, int64, error)
}

// Queries only: audit rows are appended exclusively inside the mutating
// usecases' transactions.
type DefaultChangeLogUsecase struct {
	changeLogRepo domain.PriceChangeLogRepository
}

func NewDefaultChangeLogUsecase(changeLogRepo domain.PriceChangeLogRepository) *DefaultChangeLogUsecase {
	return &DefaultChangeLogUsecase{changeLogRepo: changeLogRepo}
}

func (uc *DefaultChangeLogUsecase) ListChangeLogs(filter domain.ChangeLogFilter) ([]*domain.PriceChangeLog, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return uc.changeLogRepo.ListChangeLogs(filter)
}

func (uc *DefaultChangeLogUsecase) ListBySettlementPrice(settlementPriceID int64, page, pageSize int) ([]*domain.PriceChangeLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.changeLogRepo.ListBySettlementPrice(settlementPriceID, page, pageSize)
}
