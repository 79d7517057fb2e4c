package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

type MockSettlementPriceRepository struct {
	mock.Mock
}

func (m *MockSettlementPriceRepository) CreateSettlementPrice(price *domain.SettlementPrice, logs []*domain.PriceChangeLog) error {
	args := m.Called(price, logs)
	return args.Error(0)
}

func (m *MockSettlementPriceRepository) GetSettlementPriceByID(priceID int64) (*domain.SettlementPrice, error) {
	args := m.Called(priceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementPrice), args.Error(1)
}

func (m *MockSettlementPriceRepository) GetActiveSettlementPrice(agentID, channelID int64, brandCode string) (*domain.SettlementPrice, error) {
	args := m.Called(agentID, channelID, brandCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SettlementPrice), args.Error(1)
}

func (m *MockSettlementPriceRepository) ListSettlementPrices(filter domain.SettlementPriceFilter) ([]*domain.SettlementPrice, int64, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.SettlementPrice), args.Get(1).(int64), args.Error(2)
}

func (m *MockSettlementPriceRepository) UpdateSettlementPrice(price *domain.SettlementPrice, expectedVersion int, logs []*domain.PriceChangeLog) error {
	args := m.Called(price, expectedVersion, logs)
	return args.Error(0)
}

func activePrice() *domain.SettlementPrice {
	return &domain.SettlementPrice{
		ID:        10,
		AgentID:   55,
		ChannelID: 3,
		RateConfigs: domain.RateConfigs{
			"credit_rate": "0.60",
			"debit_rate":  "0.50",
		},
		DepositCashbacks: domain.DepositCashbacks{
			{DepositAmount: 9900, CashbackAmount: 5000},
		},
		Version:     4,
		Status:      domain.SettlementStatusActive,
		EffectiveAt: time.Now(),
	}
}

func newTestUsecase(priceRepo *MockSettlementPriceRepository) *DefaultSettlementUsecase {
	return NewDefaultSettlementUsecase(priceRepo, nil, nil)
}

func TestUpdateRate(t *testing.T) {
	t.Run("one changed code writes exactly one audit row and bumps the version", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		priceRepo.On("GetSettlementPriceByID", int64(10)).Return(activePrice(), nil)

		var updated *domain.SettlementPrice
		var logs []*domain.PriceChangeLog
		priceRepo.On("UpdateSettlementPrice", mock.Anything, 4, mock.Anything).Run(func(args mock.Arguments) {
			updated = args.Get(0).(*domain.SettlementPrice)
			logs = args.Get(2).([]*domain.PriceChangeLog)
		}).Return(nil)

		result, err := uc.UpdateRate(&settlementdto.UpdateRateInput{
			PriceID:     10,
			RateConfigs: domain.RateConfigs{"credit_rate": "0.55"},
			Operator:    domain.Operator{ID: 9, Name: "ops"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, result.Version)
		assert.Equal(t, 5, updated.Version)
		assert.Equal(t, "0.55", updated.RateConfigs["credit_rate"])
		// Codes absent from the patch are kept.
		assert.Equal(t, "0.50", updated.RateConfigs["debit_rate"])

		assert.Len(t, logs, 1)
		assert.Equal(t, "credit_rate", logs[0].FieldName)
		assert.Equal(t, "0.60", logs[0].OldValue)
		assert.Equal(t, "0.55", logs[0].NewValue)
		assert.Equal(t, domain.ChangeTypeRate, logs[0].ChangeType)
		assert.Equal(t, domain.ConfigTypeSettlement, logs[0].ConfigType)
		assert.NotEmpty(t, logs[0].BatchID)
		assert.Equal(t, int64(9), logs[0].OperatorID)
	})

	t.Run("identical patch writes nothing and keeps the version", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		priceRepo.On("GetSettlementPriceByID", int64(10)).Return(activePrice(), nil)

		result, err := uc.UpdateRate(&settlementdto.UpdateRateInput{
			PriceID:     10,
			RateConfigs: domain.RateConfigs{"credit_rate": "0.60"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, result.Version)
		priceRepo.AssertNotCalled(t, "UpdateSettlementPrice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-decimal rate is rejected", func(t *testing.T) {
		uc := newTestUsecase(new(MockSettlementPriceRepository))

		_, err := uc.UpdateRate(&settlementdto.UpdateRateInput{
			PriceID:     10,
			RateConfigs: domain.RateConfigs{"credit_rate": "zero"},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rate out of range is rejected", func(t *testing.T) {
		uc := newTestUsecase(new(MockSettlementPriceRepository))

		_, err := uc.UpdateRate(&settlementdto.UpdateRateInput{
			PriceID:     10,
			RateConfigs: domain.RateConfigs{"credit_rate": "100"},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateDeposit(t *testing.T) {
	t.Run("replaces the tier list with one serialized audit row", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		priceRepo.On("GetSettlementPriceByID", int64(10)).Return(activePrice(), nil)

		var logs []*domain.PriceChangeLog
		priceRepo.On("UpdateSettlementPrice", mock.Anything, 4, mock.Anything).Run(func(args mock.Arguments) {
			logs = args.Get(2).([]*domain.PriceChangeLog)
		}).Return(nil)

		result, err := uc.UpdateDeposit(&settlementdto.UpdateDepositInput{
			PriceID: 10,
			DepositCashbacks: domain.DepositCashbacks{
				{DepositAmount: 9900, CashbackAmount: 5000},
				{DepositAmount: 19900, CashbackAmount: 12000},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, result.Version)
		assert.Len(t, logs, 1)
		assert.Equal(t, "deposit_cashbacks", logs[0].FieldName)
		assert.Equal(t, domain.ChangeTypeDeposit, logs[0].ChangeType)
		assert.Contains(t, logs[0].NewValue, "19900")
	})

	t.Run("concurrent update loser surfaces stale version", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		priceRepo.On("GetSettlementPriceByID", int64(10)).Return(activePrice(), nil)
		priceRepo.On("UpdateSettlementPrice", mock.Anything, 4, mock.Anything).Return(domain.ErrStaleVersion)

		_, err := uc.UpdateDeposit(&settlementdto.UpdateDepositInput{
			PriceID: 10,
			DepositCashbacks: domain.DepositCashbacks{
				{DepositAmount: 29900, CashbackAmount: 15000},
			},
		})
		assert.ErrorIs(t, err, domain.ErrStaleVersion)
	})

	t.Run("non-increasing tiers are rejected", func(t *testing.T) {
		uc := newTestUsecase(new(MockSettlementPriceRepository))

		_, err := uc.UpdateDeposit(&settlementdto.UpdateDepositInput{
			PriceID: 10,
			DepositCashbacks: domain.DepositCashbacks{
				{DepositAmount: 9900, CashbackAmount: 5000},
				{DepositAmount: 9900, CashbackAmount: 6000},
			},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCreateSettlementPrice(t *testing.T) {
	t.Run("seeds version 1 with an init audit row", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		var created *domain.SettlementPrice
		var logs []*domain.PriceChangeLog
		priceRepo.On("CreateSettlementPrice", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(0).(*domain.SettlementPrice)
			logs = args.Get(1).([]*domain.PriceChangeLog)
		}).Return(nil)

		price, err := uc.CreateSettlementPrice(&settlementdto.CreateSettlementPriceInput{
			AgentID:   55,
			ChannelID: 3,
			Operator:  domain.Operator{ID: 9, Name: "ops"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, price.Version)
		assert.Equal(t, domain.SettlementStatusActive, price.Status)
		assert.Equal(t, int64(9), *created.CreatedBy)
		assert.Len(t, logs, 1)
		assert.Equal(t, domain.ChangeTypeInit, logs[0].ChangeType)
	})

	t.Run("second active config for the triple is rejected", func(t *testing.T) {
		priceRepo := new(MockSettlementPriceRepository)
		uc := newTestUsecase(priceRepo)

		priceRepo.On("CreateSettlementPrice", mock.Anything, mock.Anything).Return(domain.ErrDuplicateActiveConfig)

		_, err := uc.CreateSettlementPrice(&settlementdto.CreateSettlementPriceInput{
			AgentID:   55,
			ChannelID: 3,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateActiveConfig)
	})

	t.Run("missing agent id is rejected", func(t *testing.T) {
		uc := newTestUsecase(new(MockSettlementPriceRepository))

		_, err := uc.CreateSettlementPrice(&settlementdto.CreateSettlementPriceInput{ChannelID: 3})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateSim(t *testing.T) {
	priceRepo := new(MockSettlementPriceRepository)
	uc := newTestUsecase(priceRepo)

	price := activePrice()
	price.SimFirstCashback = 3000
	priceRepo.On("GetSettlementPriceByID", int64(10)).Return(price, nil)

	var logs []*domain.PriceChangeLog
	priceRepo.On("UpdateSettlementPrice", mock.Anything, 4, mock.Anything).Run(func(args mock.Arguments) {
		logs = args.Get(2).([]*domain.PriceChangeLog)
	}).Return(nil)

	result, err := uc.UpdateSim(&settlementdto.UpdateSimInput{
		PriceID:              10,
		SimFirstCashback:     3500,
		SimSecondCashback:    0,
		SimThirdPlusCashback: 0,
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, result.Version)
	assert.Len(t, logs, 1)
	assert.Equal(t, "sim_first_cashback", logs[0].FieldName)
	assert.Equal(t, "3000", logs[0].OldValue)
	assert.Equal(t, "3500", logs[0].NewValue)
	assert.Equal(t, domain.ChangeTypeSim, logs[0].ChangeType)
}

func TestDiffStringMap(t *testing.T) {
	current := map[string]string{"a": "1", "b": "2"}
	merged, changes := diffStringMap(current, map[string]string{"b": "3", "c": "4"})

	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, merged)
	assert.Len(t, changes, 2)
	// Changes come out in sorted key order, so batches replay deterministically.
	assert.Equal(t, "b", changes[0].field)
	assert.Equal(t, "2", changes[0].oldValue)
	assert.Equal(t, "c", changes[1].field)
	assert.Equal(t, "", changes[1].oldValue)
	// The input map is not mutated.
	assert.Equal(t, "2", current["b"])
}
