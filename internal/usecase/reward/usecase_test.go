package reward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

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

func validStages() []rewarddto.StageInput {
	return []rewarddto.StageInput{
		{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
		{StageOrder: 2, StartValue: 31, EndValue: 90, TargetValue: 50000, RewardAmount: 8000},
	}
}

func TestValidateStages(t *testing.T) {
	tests := []struct {
		name    string
		stages  []rewarddto.StageInput
		wantErr bool
	}{
		{"two contiguous stages", validStages(), false},
		{"single stage", validStages()[:1], false},
		{"empty list", nil, true},
		{
			"duplicate order",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
				{StageOrder: 1, StartValue: 31, EndValue: 90, TargetValue: 50000, RewardAmount: 8000},
			},
			true,
		},
		{
			"orders not contiguous",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
				{StageOrder: 3, StartValue: 31, EndValue: 90, TargetValue: 50000, RewardAmount: 8000},
			},
			true,
		},
		{
			"overlapping windows",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
				{StageOrder: 2, StartValue: 30, EndValue: 90, TargetValue: 50000, RewardAmount: 8000},
			},
			true,
		},
		{
			"end before start",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 10, EndValue: 5, TargetValue: 10000, RewardAmount: 2000},
			},
			true,
		},
		{
			"zero target",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 0, RewardAmount: 2000},
			},
			true,
		},
		{
			"zero reward",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 0},
			},
			true,
		},
		{
			"start below one",
			[]rewarddto.StageInput{
				{StageOrder: 1, StartValue: 0, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStages(tt.stages)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateTemplate(t *testing.T) {
	t.Run("valid template is created enabled", func(t *testing.T) {
		repo := new(MockRewardTemplateRepository)
		uc := NewDefaultTemplateUsecase(repo)

		repo.On("CreateTemplate", mock.Anything).Return(nil)

		template, err := uc.CreateTemplate(&rewarddto.CreateTemplateInput{
			Name:      "first-quarter activation",
			TimeBasis: domain.TimeBasisDays,
			Dimension: domain.DimensionAmount,
			Stages:    validStages(),
		})

		assert.NoError(t, err)
		assert.True(t, template.Enabled)
		assert.Len(t, template.Stages, 2)
	})

	t.Run("bad time basis is rejected", func(t *testing.T) {
		uc := NewDefaultTemplateUsecase(new(MockRewardTemplateRepository))

		_, err := uc.CreateTemplate(&rewarddto.CreateTemplateInput{
			Name:      "x",
			TimeBasis: "weeks",
			Dimension: domain.DimensionAmount,
			Stages:    validStages(),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("amount max below amount min is rejected", func(t *testing.T) {
		uc := NewDefaultTemplateUsecase(new(MockRewardTemplateRepository))

		amountMax := int64(50)
		_, err := uc.CreateTemplate(&rewarddto.CreateTemplateInput{
			Name:      "x",
			TimeBasis: domain.TimeBasisDays,
			Dimension: domain.DimensionAmount,
			AmountMin: 100,
			AmountMax: &amountMax,
			Stages:    validStages(),
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateTemplate(t *testing.T) {
	existing := func() *domain.RewardTemplate {
		return &domain.RewardTemplate{
			ID:        7,
			Name:      "first-quarter activation",
			TimeBasis: domain.TimeBasisDays,
			Dimension: domain.DimensionAmount,
			Enabled:   true,
			Stages: []*domain.RewardStage{
				{ID: 71, TemplateID: 7, StageOrder: 1, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
			},
		}
	}

	t.Run("partial update keeps the stage set", func(t *testing.T) {
		repo := new(MockRewardTemplateRepository)
		uc := NewDefaultTemplateUsecase(repo)

		repo.On("GetTemplateByID", int64(7)).Return(existing(), nil)
		repo.On("ReplaceTemplate", mock.Anything, false).Return(nil)

		name := "renamed"
		template, err := uc.UpdateTemplate(&rewarddto.UpdateTemplateInput{
			TemplateID: 7,
			Name:       &name,
		})

		assert.NoError(t, err)
		assert.Equal(t, "renamed", template.Name)
		repo.AssertCalled(t, "ReplaceTemplate", mock.Anything, false)
	})

	t.Run("stage list replaces the whole set", func(t *testing.T) {
		repo := new(MockRewardTemplateRepository)
		uc := NewDefaultTemplateUsecase(repo)

		repo.On("GetTemplateByID", int64(7)).Return(existing(), nil)
		repo.On("ReplaceTemplate", mock.Anything, true).Return(nil)

		template, err := uc.UpdateTemplate(&rewarddto.UpdateTemplateInput{
			TemplateID: 7,
			Stages:     validStages(),
		})

		assert.NoError(t, err)
		assert.Len(t, template.Stages, 2)
	})

	t.Run("unknown template", func(t *testing.T) {
		repo := new(MockRewardTemplateRepository)
		uc := NewDefaultTemplateUsecase(repo)

		repo.On("GetTemplateByID", int64(404)).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateTemplate(&rewarddto.UpdateTemplateInput{TemplateID: 404})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid replacement stages are rejected", func(t *testing.T) {
		repo := new(MockRewardTemplateRepository)
		uc := NewDefaultTemplateUsecase(repo)

		repo.On("GetTemplateByID", int64(7)).Return(existing(), nil)

		_, err := uc.UpdateTemplate(&rewarddto.UpdateTemplateInput{
			TemplateID: 7,
			Stages: []rewarddto.StageInput{
				{StageOrder: 2, StartValue: 1, EndValue: 30, TargetValue: 10000, RewardAmount: 2000},
			},
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestListTemplates(t *testing.T) {
	repo := new(MockRewardTemplateRepository)
	uc := NewDefaultTemplateUsecase(repo)

	enabled := true
	repo.On("ListTemplates", &enabled, 1, 20).
		Return([]*domain.RewardTemplate{{ID: 7}}, int64(1), nil)

	out, err := uc.ListTemplates(&rewarddto.ListTemplatesInput{Enabled: &enabled})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.PageSize)
}
