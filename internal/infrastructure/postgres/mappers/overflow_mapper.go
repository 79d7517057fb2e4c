package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainOverflowLog(model *models.RewardOverflowLogModel) *domain.RewardOverflowLog {
	chain := make(domain.AgentChain, len(model.AgentChain))
	for i, info := range model.AgentChain {
		chain[i] = domain.AgentChainInfo{
			AgentID:    info.AgentID,
			AgentName:  info.AgentName,
			Level:      info.Level,
			RewardRate: info.RewardRate,
		}
	}
	return &domain.RewardOverflowLog{
		ID:            model.ID,
		TerminalSN:    model.TerminalSN,
		StageRewardID: model.StageRewardID,
		AgentChain:    chain,
		TotalRate:     model.TotalRate,
		RewardAmount:  model.RewardAmount,
		ErrorMessage:  model.ErrorMessage,
		Resolved:      model.Resolved,
		ResolvedAt:    model.ResolvedAt,
		ResolvedBy:    model.ResolvedBy,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMOverflowLog(log *domain.RewardOverflowLog) *models.RewardOverflowLogModel {
	chain := make(models.AgentChain, len(log.AgentChain))
	for i, info := range log.AgentChain {
		chain[i] = models.AgentChainInfo{
			AgentID:    info.AgentID,
			AgentName:  info.AgentName,
			Level:      info.Level,
			RewardRate: info.RewardRate,
		}
	}
	return &models.RewardOverflowLogModel{
		ID:            log.ID,
		TerminalSN:    log.TerminalSN,
		StageRewardID: log.StageRewardID,
		AgentChain:    chain,
		TotalRate:     log.TotalRate,
		RewardAmount:  log.RewardAmount,
		ErrorMessage:  log.ErrorMessage,
		Resolved:      log.Resolved,
		ResolvedAt:    log.ResolvedAt,
		ResolvedBy:    log.ResolvedBy,
		CreatedAt:     log.CreatedAt,
	}
}
