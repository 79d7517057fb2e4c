package overflow

import (
	"fmt"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

// Resolve marks an overflow log handled, exactly once. The first caller wins;
// later callers get ErrAlreadyResolved and the original resolution timestamp
// stays untouched. No payout is reversed here.
func (uc *DefaultOverflowUsecase) Resolve(logID int64, resolvedBy string) (*domain.RewardOverflowLog, error) {
	if resolvedBy == "" {
		return nil, fmt.Errorf("%w: resolver identity is required", domain.ErrValidation)
	}

	if err := uc.overflowRepo.MarkResolved(logID, resolvedBy, time.Now()); err != nil {
		return nil, err
	}
	if uc.metrics != nil {
		uc.metrics.RecordOverflowResolved()
	}
	return uc.overflowRepo.GetOverflowLogByID(logID)
}
