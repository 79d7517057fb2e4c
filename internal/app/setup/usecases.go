package setup

import (
	"github.com/lunarpay/settlement-reward-service/internal/usecase/agentreward"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/changelog"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/overflow"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/progress"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/reward"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/settlement"
)

type UseCases struct {
	TemplateUsecase    reward.TemplateUsecase
	AgentRewardUsecase agentreward.AgentRewardUsecase
	ProgressUsecase    progress.ProgressUsecase
	OverflowUsecase    overflow.OverflowUsecase
	SettlementUsecase  settlement.SettlementUsecase
	ChangeLogUsecase   changelog.ChangeLogUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	templateUsecase := reward.NewDefaultTemplateUsecase(deps.Repositories.TemplateRepo)
	agentRewardUsecase := agentreward.NewDefaultAgentRewardUsecase(deps.Repositories.AgentRewardRepo)

	progressUsecase := progress.NewDefaultProgressUsecase(
		deps.Repositories.ProgressRepo,
		deps.Repositories.TemplateRepo,
		deps.Repositories.AgentRewardRepo,
		deps.RewardPublisher,
		deps.Metrics,
	)

	overflowUsecase := overflow.NewDefaultOverflowUsecase(deps.Repositories.OverflowRepo, deps.Metrics)

	settlementUsecase := settlement.NewDefaultSettlementUsecase(
		deps.Repositories.PriceRepo,
		deps.PricePublisher,
		deps.Metrics,
	)

	changeLogUsecase := changelog.NewDefaultChangeLogUsecase(deps.Repositories.ChangeLogRepo)

	return &UseCases{
		TemplateUsecase:    templateUsecase,
		AgentRewardUsecase: agentRewardUsecase,
		ProgressUsecase:    progressUsecase,
		OverflowUsecase:    overflowUsecase,
		SettlementUsecase:  settlementUsecase,
		ChangeLogUsecase:   changeLogUsecase,
	}
}
