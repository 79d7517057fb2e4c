package mappers

import (
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
)

func ToDomainChangeLog(model *models.PriceChangeLogModel) *domain.PriceChangeLog {
	return &domain.PriceChangeLog{
		ID:                model.ID,
		AgentID:           model.AgentID,
		ChannelID:         model.ChannelID,
		SettlementPriceID: model.SettlementPriceID,
		RewardSettingID:   model.RewardSettingID,
		ChangeType:        domain.ChangeType(model.ChangeType),
		ConfigType:        domain.ConfigType(model.ConfigType),
		FieldName:         model.FieldName,
		OldValue:          model.OldValue,
		NewValue:          model.NewValue,
		ChangeSummary:     model.ChangeSummary,
		BatchID:           model.BatchID,
		OperatorID:        model.OperatorID,
		OperatorName:      model.OperatorName,
		Source:            model.Source,
		IPAddress:         model.IPAddress,
		CreatedAt:         model.CreatedAt,
	}
}

func ToGORMChangeLog(log *domain.PriceChangeLog) *models.PriceChangeLogModel {
	return &models.PriceChangeLogModel{
		ID:                log.ID,
		AgentID:           log.AgentID,
		ChannelID:         log.ChannelID,
		SettlementPriceID: log.SettlementPriceID,
		RewardSettingID:   log.RewardSettingID,
		ChangeType:        int16(log.ChangeType),
		ConfigType:        int16(log.ConfigType),
		FieldName:         log.FieldName,
		OldValue:          log.OldValue,
		NewValue:          log.NewValue,
		ChangeSummary:     log.ChangeSummary,
		BatchID:           log.BatchID,
		OperatorID:        log.OperatorID,
		OperatorName:      log.OperatorName,
		Source:            log.Source,
		IPAddress:         log.IPAddress,
		CreatedAt:         log.CreatedAt,
	}
}
