package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRewardTemplateRepository struct {
	db *gorm.DB
}

func NewDefaultRewardTemplateRepository(db *gorm.DB) *DefaultRewardTemplateRepository {
	return &DefaultRewardTemplateRepository{db: db}
}

func (r *DefaultRewardTemplateRepository) CreateTemplate(template *domain.RewardTemplate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		model := mappers.ToGORMTemplate(template)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}
		template.ID = model.ID
		for _, stage := range template.Stages {
			stage.TemplateID = model.ID
			stageModel := mappers.ToGORMStage(stage)
			if err := tx.Create(stageModel).Error; err != nil {
				return fmt.Errorf("failed to create stage %d: %w", stage.StageOrder, err)
			}
			stage.ID = stageModel.ID
		}
		return nil
	})
}

func (r *DefaultRewardTemplateRepository) ReplaceTemplate(template *domain.RewardTemplate, replaceStages bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.RewardTemplateModel
		if err := tx.Where("id = ?", template.ID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":        template.Name,
			"trans_types": template.TransTypes,
			"amount_min":  template.AmountMin,
			"amount_max":  template.AmountMax,
			"allow_gap":   template.AllowGap,
			"enabled":     template.Enabled,
			"description": template.Description,
			"updated_at":  time.Now(),
		}
		if err := tx.Model(&models.RewardTemplateModel{}).Where("id = ?", template.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update template: %w", err)
		}

		if !replaceStages {
			return nil
		}
		if err := tx.Where("template_id = ?", template.ID).Delete(&models.RewardStageModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete stages: %w", err)
		}
		for _, stage := range template.Stages {
			stage.TemplateID = template.ID
			stageModel := mappers.ToGORMStage(stage)
			stageModel.ID = 0
			if err := tx.Create(stageModel).Error; err != nil {
				return fmt.Errorf("failed to create stage %d: %w", stage.StageOrder, err)
			}
			stage.ID = stageModel.ID
		}
		return nil
	})
}

func (r *DefaultRewardTemplateRepository) GetTemplateByID(templateID int64) (*domain.RewardTemplate, error) {
	var model models.RewardTemplateModel
	if err := r.db.Where("id = ?", templateID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var stageModels []models.RewardStageModel
	if err := r.db.Where("template_id = ?", templateID).
		Order("stage_order").
		Find(&stageModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainTemplate(&model, stageModels), nil
}

func (r *DefaultRewardTemplateRepository) ListTemplates(enabled *bool, page, pageSize int) ([]*domain.RewardTemplate, int64, error) {
	query := r.db.Model(&models.RewardTemplateModel{})
	if enabled != nil {
		query = query.Where("enabled = ?", *enabled)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	var templateModels []models.RewardTemplateModel
	if err := query.
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&templateModels).Error; err != nil {
		return nil, 0, err
	}

	templateIDs := make([]int64, len(templateModels))
	for i, model := range templateModels {
		templateIDs[i] = model.ID
	}
	stagesByTemplate := make(map[int64][]models.RewardStageModel)
	if len(templateIDs) > 0 {
		var stageModels []models.RewardStageModel
		if err := r.db.Where("template_id IN ?", templateIDs).
			Order("stage_order").
			Find(&stageModels).Error; err != nil {
			return nil, 0, err
		}
		for _, stageModel := range stageModels {
			stagesByTemplate[stageModel.TemplateID] = append(stagesByTemplate[stageModel.TemplateID], stageModel)
		}
	}

	templates := make([]*domain.RewardTemplate, len(templateModels))
	for i, model := range templateModels {
		templates[i] = mappers.ToDomainTemplate(&model, stagesByTemplate[model.ID])
	}
	return templates, total, nil
}

func (r *DefaultRewardTemplateRepository) SetTemplateEnabled(templateID int64, enabled bool) error {
	res := r.db.Model(&models.RewardTemplateModel{}).
		Where("id = ?", templateID).
		Updates(map[string]interface{}{"enabled": enabled, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
