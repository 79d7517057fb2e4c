package postgres

import (
	"log"

	"github.com/lunarpay/settlement-reward-service/internal/config"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.SettlementConfig) *gorm.DB {
	dsn := cfg.SettlementDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.RewardTemplateModel{},
		&models.RewardStageModel{},
		&models.AgentRewardAmountModel{},
		&models.TerminalRewardProgressModel{},
		&models.TerminalStageRewardModel{},
		&models.RewardOverflowLogModel{},
		&models.SettlementPriceModel{},
		&models.PriceChangeLogModel{},
	)

	return db
}
