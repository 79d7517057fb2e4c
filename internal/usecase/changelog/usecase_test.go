package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
)

type MockPriceChangeLogRepository struct {
	mock.Mock
}

func (m *MockPriceChangeLogRepository) ListChangeLogs(filter domain.ChangeLogFilter) ([]*domain.PriceChangeLog, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.PriceChangeLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockPriceChangeLogRepository) ListBySettlementPrice(settlementPriceID int64, page, pageSize int) ([]*domain.PriceChangeLog, int64, error) {
	args := m.Called(settlementPriceID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.PriceChangeLog), args.Get(1).(int64), args.Error(2)
}

func TestListChangeLogs(t *testing.T) {
	t.Run("missing pagination falls back to defaults", func(t *testing.T) {
		repo := new(MockPriceChangeLogRepository)
		uc := NewDefaultChangeLogUsecase(repo)

		agentID := int64(55)
		repo.On("ListChangeLogs", mock.MatchedBy(func(f domain.ChangeLogFilter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.AgentID != nil && *f.AgentID == 55
		})).Return([]*domain.PriceChangeLog{{ID: 1}}, int64(1), nil)

		logs, total, err := uc.ListChangeLogs(domain.ChangeLogFilter{AgentID: &agentID})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, logs, 1)
	})

	t.Run("oversized page size is clamped", func(t *testing.T) {
		repo := new(MockPriceChangeLogRepository)
		uc := NewDefaultChangeLogUsecase(repo)

		repo.On("ListChangeLogs", mock.MatchedBy(func(f domain.ChangeLogFilter) bool {
			return f.PageSize == 20
		})).Return(nil, int64(0), nil)

		_, _, err := uc.ListChangeLogs(domain.ChangeLogFilter{Page: 1, PageSize: 500})
		assert.NoError(t, err)
	})
}

func TestListBySettlementPrice(t *testing.T) {
	repo := new(MockPriceChangeLogRepository)
	uc := NewDefaultChangeLogUsecase(repo)

	changeType := domain.ChangeTypeRate
	repo.On("ListBySettlementPrice", int64(10), 1, 20).
		Return([]*domain.PriceChangeLog{
			{ID: 2, ChangeType: changeType, FieldName: "credit_rate"},
		}, int64(1), nil)

	logs, total, err := uc.ListBySettlementPrice(10, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "credit_rate", logs[0].FieldName)
}
