package handlers

import (
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type StageView struct {
	ID           int64 `json:"id"`
	StageOrder   int   `json:"stage_order"`
	StartValue   int   `json:"start_value"`
	EndValue     int   `json:"end_value"`
	TargetValue  int64 `json:"target_value"`
	RewardAmount int64 `json:"reward_amount"`
}

type TemplateView struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	TimeBasis   string      `json:"time_basis"`
	Dimension   string      `json:"dimension"`
	TransTypes  string      `json:"trans_types"`
	AmountMin   int64       `json:"amount_min"`
	AmountMax   *int64      `json:"amount_max"`
	AllowGap    bool        `json:"allow_gap"`
	Enabled     bool        `json:"enabled"`
	Description string      `json:"description"`
	Stages      []StageView `json:"stages"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func toTemplateView(template *domain.RewardTemplate) TemplateView {
	stages := make([]StageView, len(template.Stages))
	for i, stage := range template.Stages {
		stages[i] = StageView{
			ID:           stage.ID,
			StageOrder:   stage.StageOrder,
			StartValue:   stage.StartValue,
			EndValue:     stage.EndValue,
			TargetValue:  stage.TargetValue,
			RewardAmount: stage.RewardAmount,
		}
	}
	return TemplateView{
		ID:          template.ID,
		Name:        template.Name,
		TimeBasis:   string(template.TimeBasis),
		Dimension:   string(template.Dimension),
		TransTypes:  template.TransTypes,
		AmountMin:   template.AmountMin,
		AmountMax:   template.AmountMax,
		AllowGap:    template.AllowGap,
		Enabled:     template.Enabled,
		Description: template.Description,
		Stages:      stages,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
}

type StageRewardView struct {
	ID           int64     `json:"id"`
	StageOrder   int       `json:"stage_order"`
	StageStart   time.Time `json:"stage_start"`
	StageEnd     time.Time `json:"stage_end"`
	TargetValue  int64     `json:"target_value"`
	ActualValue  int64     `json:"actual_value"`
	IsAchieved   bool      `json:"is_achieved"`
	RewardAmount *int64    `json:"reward_amount"`
	Status       string    `json:"status"`
}

type ProgressView struct {
	ID                int64             `json:"id"`
	TerminalSN        string            `json:"terminal_sn"`
	TemplateID        int64             `json:"template_id"`
	TemplateName      string            `json:"template_name"`
	BindAgentID       int64             `json:"bind_agent_id"`
	BindTime          time.Time         `json:"bind_time"`
	CurrentStage      int               `json:"current_stage"`
	LastAchievedStage int               `json:"last_achieved_stage"`
	Status            string            `json:"status"`
	CompletedAt       *time.Time        `json:"completed_at"`
	TerminatedAt      *time.Time        `json:"terminated_at"`
	StageRewards      []StageRewardView `json:"stage_rewards"`
}

func toProgressView(progress *domain.TerminalRewardProgress, stages []*domain.TerminalStageReward) ProgressView {
	stageViews := make([]StageRewardView, len(stages))
	for i, stage := range stages {
		stageViews[i] = StageRewardView{
			ID:           stage.ID,
			StageOrder:   stage.StageOrder,
			StageStart:   stage.StageStart,
			StageEnd:     stage.StageEnd,
			TargetValue:  stage.TargetValue,
			ActualValue:  stage.ActualValue,
			IsAchieved:   stage.IsAchieved,
			RewardAmount: stage.RewardAmount,
			Status:       string(stage.Status),
		}
	}
	return ProgressView{
		ID:                progress.ID,
		TerminalSN:        progress.TerminalSN,
		TemplateID:        progress.TemplateID,
		TemplateName:      progress.TemplateSnapshot.Name,
		BindAgentID:       progress.BindAgentID,
		BindTime:          progress.BindTime,
		CurrentStage:      progress.CurrentStage,
		LastAchievedStage: progress.LastAchievedStage,
		Status:            string(progress.Status),
		CompletedAt:       progress.CompletedAt,
		TerminatedAt:      progress.TerminatedAt,
		StageRewards:      stageViews,
	}
}

type OverflowLogView struct {
	ID            int64                   `json:"id"`
	TerminalSN    string                  `json:"terminal_sn"`
	StageRewardID *int64                  `json:"stage_reward_id"`
	AgentChain    []domain.AgentChainInfo `json:"agent_chain"`
	TotalRate     string                  `json:"total_rate"`
	RewardAmount  int64                   `json:"reward_amount"`
	ErrorMessage  string                  `json:"error_message"`
	Resolved      bool                    `json:"resolved"`
	ResolvedAt    *time.Time              `json:"resolved_at"`
	ResolvedBy    string                  `json:"resolved_by"`
	CreatedAt     time.Time               `json:"created_at"`
}

func toOverflowLogView(log *domain.RewardOverflowLog) OverflowLogView {
	return OverflowLogView{
		ID:            log.ID,
		TerminalSN:    log.TerminalSN,
		StageRewardID: log.StageRewardID,
		AgentChain:    log.AgentChain,
		TotalRate:     log.TotalRate,
		RewardAmount:  log.RewardAmount,
		ErrorMessage:  log.ErrorMessage,
		Resolved:      log.Resolved,
		ResolvedAt:    log.ResolvedAt,
		ResolvedBy:    log.ResolvedBy,
		CreatedAt:     log.CreatedAt,
	}
}

type SettlementPriceView struct {
	ID                   int64                        `json:"id"`
	AgentID              int64                        `json:"agent_id"`
	ChannelID            int64                        `json:"channel_id"`
	TemplateID           *int64                       `json:"template_id"`
	BrandCode            string                       `json:"brand_code"`
	RateConfigs          domain.RateConfigs           `json:"rate_configs"`
	DepositCashbacks     []domain.DepositCashbackItem `json:"deposit_cashbacks"`
	SimFirstCashback     int64                        `json:"sim_first_cashback"`
	SimSecondCashback    int64                        `json:"sim_second_cashback"`
	SimThirdPlusCashback int64                        `json:"sim_third_plus_cashback"`
	HighRateConfigs      domain.HighRateConfigs       `json:"high_rate_configs"`
	D0ExtraConfigs       domain.D0ExtraConfigs        `json:"d0_extra_configs"`
	Version              int                          `json:"version"`
	Status               int16                        `json:"status"`
	EffectiveAt          time.Time                    `json:"effective_at"`
	UpdatedAt            time.Time                    `json:"updated_at"`
}

func toSettlementPriceView(price *domain.SettlementPrice) SettlementPriceView {
	return SettlementPriceView{
		ID:                   price.ID,
		AgentID:              price.AgentID,
		ChannelID:            price.ChannelID,
		TemplateID:           price.TemplateID,
		BrandCode:            price.BrandCode,
		RateConfigs:          price.RateConfigs,
		DepositCashbacks:     price.DepositCashbacks,
		SimFirstCashback:     price.SimFirstCashback,
		SimSecondCashback:    price.SimSecondCashback,
		SimThirdPlusCashback: price.SimThirdPlusCashback,
		HighRateConfigs:      price.HighRateConfigs,
		D0ExtraConfigs:       price.D0ExtraConfigs,
		Version:              price.Version,
		Status:               price.Status,
		EffectiveAt:          price.EffectiveAt,
		UpdatedAt:            price.UpdatedAt,
	}
}

type ChangeLogView struct {
	ID             int64     `json:"id"`
	AgentID        int64     `json:"agent_id"`
	ChannelID      *int64    `json:"channel_id"`
	ChangeType     int16     `json:"change_type"`
	ChangeTypeName string    `json:"change_type_name"`
	ConfigType     int16     `json:"config_type"`
	FieldName      string    `json:"field_name"`
	OldValue       string    `json:"old_value"`
	NewValue       string    `json:"new_value"`
	ChangeSummary  string    `json:"change_summary"`
	BatchID        string    `json:"batch_id"`
	OperatorID     int64     `json:"operator_id"`
	OperatorName   string    `json:"operator_name"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
}

func toChangeLogView(log *domain.PriceChangeLog) ChangeLogView {
	return ChangeLogView{
		ID:             log.ID,
		AgentID:        log.AgentID,
		ChannelID:      log.ChannelID,
		ChangeType:     int16(log.ChangeType),
		ChangeTypeName: domain.ChangeTypeName(log.ChangeType),
		ConfigType:     int16(log.ConfigType),
		FieldName:      log.FieldName,
		OldValue:       log.OldValue,
		NewValue:       log.NewValue,
		ChangeSummary:  log.ChangeSummary,
		BatchID:        log.BatchID,
		OperatorID:     log.OperatorID,
		OperatorName:   log.OperatorName,
		Source:         log.Source,
		CreatedAt:      log.CreatedAt,
	}
}

func toChangeLogViews(logs []*domain.PriceChangeLog) []ChangeLogView {
	views := make([]ChangeLogView, len(logs))
	for i, log := range logs {
		views[i] = toChangeLogView(log)
	}
	return views
}
