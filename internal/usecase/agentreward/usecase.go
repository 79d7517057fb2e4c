package agentreward

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

type AgentRewardUsecase interface {
	GetAmount(agentID, templateID int64) (*domain.AgentRewardAmount, error)
	SetAmount(input *rewarddto.SetAgentAmountInput) (*domain.AgentRewardAmount, error)
}

type DefaultAgentRewardUsecase struct {
	amountRepo domain.AgentRewardAmountRepository
}

func NewDefaultAgentRewardUsecase(amountRepo domain.AgentRewardAmountRepository) *DefaultAgentRewardUsecase {
	return &DefaultAgentRewardUsecase{amountRepo: amountRepo}
}

func (uc *DefaultAgentRewardUsecase) GetAmount(agentID, templateID int64) (*domain.AgentRewardAmount, error) {
	return uc.amountRepo.GetAmount(agentID, templateID)
}

// SetAmount upserts the agent's differential override and writes the
// reward-config audit rows in the same transaction. An unchanged amount
// writes nothing.
func (uc *DefaultAgentRewardUsecase) SetAmount(input *rewarddto.SetAgentAmountInput) (*domain.AgentRewardAmount, error) {
	if input.AgentID <= 0 || input.TemplateID <= 0 {
		return nil, fmt.Errorf("%w: agent id and template id are required", domain.ErrValidation)
	}
	if input.RewardAmount < 0 {
		return nil, fmt.Errorf("%w: reward amount must not be negative", domain.ErrValidation)
	}

	changeType := domain.ChangeTypeInit
	oldValue := ""
	existing, err := uc.amountRepo.GetAmount(input.AgentID, input.TemplateID)
	switch {
	case err == nil:
		if existing.RewardAmount == input.RewardAmount {
			return existing, nil
		}
		changeType = domain.ChangeTypeRate
		oldValue = strconv.FormatInt(existing.RewardAmount, 10)
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	newValue := strconv.FormatInt(input.RewardAmount, 10)

	amount := &domain.AgentRewardAmount{
		AgentID:      input.AgentID,
		TemplateID:   input.TemplateID,
		RewardAmount: input.RewardAmount,
	}
	logs := []*domain.PriceChangeLog{{
		AgentID:       input.AgentID,
		ChangeType:    changeType,
		ConfigType:    domain.ConfigTypeReward,
		FieldName:     "reward_amount",
		OldValue:      oldValue,
		NewValue:      newValue,
		ChangeSummary: fmt.Sprintf("reward_amount changed from %q to %q", oldValue, newValue),
		BatchID:       idGenerator(),
		OperatorID:    input.Operator.ID,
		OperatorName:  input.Operator.Name,
		Source:        input.Operator.Source,
		IPAddress:     input.Operator.IP,
		CreatedAt:     time.Now(),
	}}

	if err := uc.amountRepo.UpsertAmount(amount, logs); err != nil {
		return nil, err
	}
	return amount, nil
}
