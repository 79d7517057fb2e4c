package overflow

import (
	"fmt"
	"strconv"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

// Record files an overflow detected by the distribution engine. The payout is
// already skipped at that point; the record exists so operators can settle it
// by hand.
func (uc *DefaultOverflowUsecase) Record(log *domain.RewardOverflowLog) (*domain.RewardOverflowLog, error) {
	if log.TerminalSN == "" {
		return nil, fmt.Errorf("%w: terminal sn is required", domain.ErrValidation)
	}
	if len(log.AgentChain) == 0 {
		return nil, fmt.Errorf("%w: agent chain is required", domain.ErrValidation)
	}
	totalRate, err := strconv.ParseFloat(log.TotalRate, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: total rate is not a decimal: %q", domain.ErrValidation, log.TotalRate)
	}
	if totalRate <= 1.0 {
		return nil, fmt.Errorf("%w: total rate %s does not overflow", domain.ErrValidation, log.TotalRate)
	}

	log.Resolved = false
	log.ResolvedAt = nil
	log.ResolvedBy = ""
	if err := uc.overflowRepo.CreateOverflowLog(log); err != nil {
		return nil, err
	}
	return log, nil
}
