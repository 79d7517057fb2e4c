package settlement

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	publisher "github.com/lunarpay/settlement-reward-service/internal/infrastructure/kafka"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/metrics"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

type SettlementUsecase interface {
	CreateSettlementPrice(input *settlementdto.CreateSettlementPriceInput) (*domain.SettlementPrice, error)
	UpdateRate(input *settlementdto.UpdateRateInput) (*domain.SettlementPrice, error)
	UpdateDeposit(input *settlementdto.UpdateDepositInput) (*domain.SettlementPrice, error)
	UpdateSim(input *settlementdto.UpdateSimInput) (*domain.SettlementPrice, error)
	UpdateHighRate(input *settlementdto.UpdateHighRateInput) (*domain.SettlementPrice, error)
	UpdateD0Extra(input *settlementdto.UpdateD0ExtraInput) (*domain.SettlementPrice, error)
	GetSettlementPrice(priceID int64) (*domain.SettlementPrice, error)
	GetActiveSettlementPrice(agentID, channelID int64, brandCode string) (*domain.SettlementPrice, error)
	ListSettlementPrices(filter domain.SettlementPriceFilter) (*settlementdto.ListSettlementPricesOutput, error)
}

type DefaultSettlementUsecase struct {
	priceRepo      domain.SettlementPriceRepository
	kafkaPublisher *publisher.KafkaPublisher
	metrics        *metrics.SettlementMetrics
}

func NewDefaultSettlementUsecase(
	priceRepo domain.SettlementPriceRepository,
	kafkaPublisher *publisher.KafkaPublisher,
	settlementMetrics *metrics.SettlementMetrics,
) *DefaultSettlementUsecase {
	return &DefaultSettlementUsecase{
		priceRepo:      priceRepo,
		kafkaPublisher: kafkaPublisher,
		metrics:        settlementMetrics,
	}
}
