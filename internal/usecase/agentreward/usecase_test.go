package agentreward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

type MockAgentRewardAmountRepository struct {
	mock.Mock
}

func (m *MockAgentRewardAmountRepository) GetAmount(agentID, templateID int64) (*domain.AgentRewardAmount, error) {
	args := m.Called(agentID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgentRewardAmount), args.Error(1)
}

func (m *MockAgentRewardAmountRepository) UpsertAmount(amount *domain.AgentRewardAmount, logs []*domain.PriceChangeLog) error {
	args := m.Called(amount, logs)
	return args.Error(0)
}

func TestSetAmount(t *testing.T) {
	t.Run("first set writes an init audit row", func(t *testing.T) {
		repo := new(MockAgentRewardAmountRepository)
		uc := NewDefaultAgentRewardUsecase(repo)

		repo.On("GetAmount", int64(55), int64(7)).Return(nil, domain.ErrNotFound)

		var logs []*domain.PriceChangeLog
		repo.On("UpsertAmount", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			logs = args.Get(1).([]*domain.PriceChangeLog)
		}).Return(nil)

		amount, err := uc.SetAmount(&rewarddto.SetAgentAmountInput{
			AgentID:      55,
			TemplateID:   7,
			RewardAmount: 1500,
			Operator:     domain.Operator{ID: 9, Name: "ops"},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), amount.RewardAmount)
		assert.Len(t, logs, 1)
		assert.Equal(t, domain.ChangeTypeInit, logs[0].ChangeType)
		assert.Equal(t, domain.ConfigTypeReward, logs[0].ConfigType)
		assert.Equal(t, "reward_amount", logs[0].FieldName)
		assert.Equal(t, "", logs[0].OldValue)
		assert.Equal(t, "1500", logs[0].NewValue)
	})

	t.Run("change writes a rate adjustment row with the old value", func(t *testing.T) {
		repo := new(MockAgentRewardAmountRepository)
		uc := NewDefaultAgentRewardUsecase(repo)

		repo.On("GetAmount", int64(55), int64(7)).Return(&domain.AgentRewardAmount{
			AgentID: 55, TemplateID: 7, RewardAmount: 1500,
		}, nil)

		var logs []*domain.PriceChangeLog
		repo.On("UpsertAmount", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			logs = args.Get(1).([]*domain.PriceChangeLog)
		}).Return(nil)

		_, err := uc.SetAmount(&rewarddto.SetAgentAmountInput{
			AgentID:      55,
			TemplateID:   7,
			RewardAmount: 1200,
		})

		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, domain.ChangeTypeRate, logs[0].ChangeType)
		assert.Equal(t, "1500", logs[0].OldValue)
		assert.Equal(t, "1200", logs[0].NewValue)
	})

	t.Run("unchanged amount writes nothing", func(t *testing.T) {
		repo := new(MockAgentRewardAmountRepository)
		uc := NewDefaultAgentRewardUsecase(repo)

		repo.On("GetAmount", int64(55), int64(7)).Return(&domain.AgentRewardAmount{
			AgentID: 55, TemplateID: 7, RewardAmount: 1500,
		}, nil)

		amount, err := uc.SetAmount(&rewarddto.SetAgentAmountInput{
			AgentID:      55,
			TemplateID:   7,
			RewardAmount: 1500,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1500), amount.RewardAmount)
		repo.AssertNotCalled(t, "UpsertAmount", mock.Anything, mock.Anything)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		uc := NewDefaultAgentRewardUsecase(new(MockAgentRewardAmountRepository))

		_, err := uc.SetAmount(&rewarddto.SetAgentAmountInput{
			AgentID:      55,
			TemplateID:   7,
			RewardAmount: -1,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
