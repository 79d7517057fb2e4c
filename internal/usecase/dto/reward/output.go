package reward

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type ListTemplatesOutput struct {
	List     []*domain.RewardTemplate
	Total    int64
	Page     int
	PageSize int
}
