package settlement

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type ListSettlementPricesOutput struct {
	List     []*domain.SettlementPrice
	Total    int64
	Page     int
	PageSize int
}
