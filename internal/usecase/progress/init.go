package progress

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

// InitProgress binds a terminal to a template: it snapshots the template,
// opens the progress at stage 1 and materializes only the stage-1 record.
// Later stage records appear as the head advances.
func (uc *DefaultProgressUsecase) InitProgress(input *progressdto.InitProgressInput) (*domain.TerminalRewardProgress, error) {
	if input.TerminalSN == "" {
		return nil, fmt.Errorf("%w: terminal sn is required", domain.ErrValidation)
	}
	if input.AgentID <= 0 {
		return nil, fmt.Errorf("%w: agent id is required", domain.ErrValidation)
	}

	template, err := uc.templateRepo.GetTemplateByID(input.TemplateID)
	if err != nil {
		return nil, err
	}
	if !template.Enabled {
		return nil, fmt.Errorf("%w: template %d is disabled", domain.ErrValidation, template.ID)
	}
	if len(template.Stages) == 0 {
		return nil, fmt.Errorf("%w: template %d has no stages", domain.ErrValidation, template.ID)
	}

	bindTime := time.Now()
	if input.BindTime != nil {
		bindTime = *input.BindTime
	}

	progress := &domain.TerminalRewardProgress{
		TerminalSN: input.TerminalSN,
		TemplateID: template.ID,
		TemplateSnapshot: domain.TemplateSnapshot{
			ID:         template.ID,
			Name:       template.Name,
			TimeBasis:  template.TimeBasis,
			Dimension:  template.Dimension,
			TransTypes: template.TransTypes,
			AmountMin:  template.AmountMin,
			AmountMax:  template.AmountMax,
			AllowGap:   template.AllowGap,
			Stages:     template.Stages,
		},
		BindAgentID:  input.AgentID,
		BindTime:     bindTime,
		CurrentStage: 1,
		Status:       domain.ProgressActive,
	}

	firstDef := progress.TemplateSnapshot.Stage(1)
	firstStage := newStageRecord(progress, firstDef)

	if err := uc.progressRepo.CreateProgress(progress, firstStage); err != nil {
		return nil, err
	}
	progress.StageRewards = []*domain.TerminalStageReward{firstStage}

	if uc.metrics != nil {
		uc.metrics.RecordProgressInit(strconv.FormatInt(template.ID, 10))
	}
	return progress, nil
}
