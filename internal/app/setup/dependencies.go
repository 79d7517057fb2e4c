package setup

import (
	"fmt"

	"github.com/lunarpay/settlement-reward-service/internal/config"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	publisher "github.com/lunarpay/settlement-reward-service/internal/infrastructure/kafka"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/metrics"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config          *config.SettlementConfig
	DB              *gorm.DB
	PricePublisher  *publisher.KafkaPublisher
	RewardPublisher *publisher.KafkaPublisher
	Metrics         *metrics.SettlementMetrics
	Repositories    *Repositories
}

type Repositories struct {
	TemplateRepo    domain.RewardTemplateRepository
	AgentRewardRepo domain.AgentRewardAmountRepository
	ProgressRepo    domain.RewardProgressRepository
	OverflowRepo    domain.OverflowLogRepository
	PriceRepo       domain.SettlementPriceRepository
	ChangeLogRepo   domain.PriceChangeLogRepository
}

func InitializeDependencies(cfg *config.SettlementConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pricePublisher := publisher.NewKafkaPublisher(brokers, "price-events")
	rewardPublisher := publisher.NewKafkaPublisher(brokers, "reward-events")

	repos := &Repositories{
		TemplateRepo:    repository.NewDefaultRewardTemplateRepository(db),
		AgentRewardRepo: repository.NewDefaultAgentRewardAmountRepository(db),
		ProgressRepo:    repository.NewDefaultRewardProgressRepository(db),
		OverflowRepo:    repository.NewDefaultOverflowLogRepository(db),
		PriceRepo:       repository.NewDefaultSettlementPriceRepository(db),
		ChangeLogRepo:   repository.NewDefaultPriceChangeLogRepository(db),
	}

	return &Dependencies{
		Config:          cfg,
		DB:              db,
		PricePublisher:  pricePublisher,
		RewardPublisher: rewardPublisher,
		Metrics:         metrics.NewSettlementMetrics(),
		Repositories:    repos,
	}, nil
}
