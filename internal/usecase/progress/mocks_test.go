package progress

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type MockRewardProgressRepository struct {
	mock.Mock
}

func (m *MockRewardProgressRepository) CreateProgress(progress *domain.TerminalRewardProgress, firstStage *domain.TerminalStageReward) error {
	args := m.Called(progress, firstStage)
	return args.Error(0)
}

func (m *MockRewardProgressRepository) GetProgressByID(progressID int64) (*domain.TerminalRewardProgress, error) {
	args := m.Called(progressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TerminalRewardProgress), args.Error(1)
}

func (m *MockRewardProgressRepository) GetActiveProgressBySN(terminalSN string) (*domain.TerminalRewardProgress, error) {
	args := m.Called(terminalSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TerminalRewardProgress), args.Error(1)
}

func (m *MockRewardProgressRepository) GetProgressBySN(terminalSN string) (*domain.TerminalRewardProgress, error) {
	args := m.Called(terminalSN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TerminalRewardProgress), args.Error(1)
}

func (m *MockRewardProgressRepository) GetStageRewards(progressID int64) ([]*domain.TerminalStageReward, error) {
	args := m.Called(progressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TerminalStageReward), args.Error(1)
}

func (m *MockRewardProgressRepository) GetPendingStage(progressID int64) (*domain.TerminalStageReward, error) {
	args := m.Called(progressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TerminalStageReward), args.Error(1)
}

func (m *MockRewardProgressRepository) ApplyStageTransition(transition *domain.StageTransition) error {
	args := m.Called(transition)
	return args.Error(0)
}

func (m *MockRewardProgressRepository) FindExpiredPendingStages(now time.Time, limit int) ([]*domain.TerminalStageReward, error) {
	args := m.Called(now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TerminalStageReward), args.Error(1)
}

func (m *MockRewardProgressRepository) TerminateProgress(progressID int64, at time.Time) error {
	args := m.Called(progressID, at)
	return args.Error(0)
}

type MockRewardTemplateRepository struct {
	mock.Mock
}

func (m *MockRewardTemplateRepository) CreateTemplate(template *domain.RewardTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockRewardTemplateRepository) ReplaceTemplate(template *domain.RewardTemplate, replaceStages bool) error {
	args := m.Called(template, replaceStages)
	return args.Error(0)
}

func (m *MockRewardTemplateRepository) GetTemplateByID(templateID int64) (*domain.RewardTemplate, error) {
	args := m.Called(templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RewardTemplate), args.Error(1)
}

func (m *MockRewardTemplateRepository) ListTemplates(enabled *bool, page, pageSize int) ([]*domain.RewardTemplate, int64, error) {
	args := m.Called(enabled, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.RewardTemplate), args.Get(1).(int64), args.Error(2)
}

func (m *MockRewardTemplateRepository) SetTemplateEnabled(templateID int64, enabled bool) error {
	args := m.Called(templateID, enabled)
	return args.Error(0)
}

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
