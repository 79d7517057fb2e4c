package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/reward"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

type RewardTemplateHandler struct {
	templateUC reward.TemplateUsecase
}

func NewRewardTemplateHandler(templateUC reward.TemplateUsecase) *RewardTemplateHandler {
	return &RewardTemplateHandler{templateUC: templateUC}
}

type stageRequest struct {
	StageOrder   int   `json:"stage_order" binding:"required,min=1"`
	StartValue   int   `json:"start_value" binding:"required,min=1"`
	EndValue     int   `json:"end_value" binding:"required,min=1"`
	TargetValue  int64 `json:"target_value" binding:"required,min=1"`
	RewardAmount int64 `json:"reward_amount" binding:"required,min=1"`
}

type createTemplateRequest struct {
	Name        string         `json:"name" binding:"required,max=64"`
	TimeBasis   string         `json:"time_basis" binding:"required,oneof=days months"`
	Dimension   string         `json:"dimension" binding:"required,oneof=amount count"`
	TransTypes  string         `json:"trans_types"`
	AmountMin   int64          `json:"amount_min" binding:"min=0"`
	AmountMax   *int64         `json:"amount_max"`
	AllowGap    bool           `json:"allow_gap"`
	Description string         `json:"description"`
	Stages      []stageRequest `json:"stages" binding:"required,dive"`
}

func toStageInputs(stages []stageRequest) []rewarddto.StageInput {
	inputs := make([]rewarddto.StageInput, len(stages))
	for i, stage := range stages {
		inputs[i] = rewarddto.StageInput{
			StageOrder:   stage.StageOrder,
			StartValue:   stage.StartValue,
			EndValue:     stage.EndValue,
			TargetValue:  stage.TargetValue,
			RewardAmount: stage.RewardAmount,
		}
	}
	return inputs
}

func (h *RewardTemplateHandler) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	template, err := h.templateUC.CreateTemplate(&rewarddto.CreateTemplateInput{
		Name:        req.Name,
		TimeBasis:   domain.TimeBasis(req.TimeBasis),
		Dimension:   domain.Dimension(req.Dimension),
		TransTypes:  req.TransTypes,
		AmountMin:   req.AmountMin,
		AmountMax:   req.AmountMax,
		AllowGap:    req.AllowGap,
		Description: req.Description,
		Stages:      toStageInputs(req.Stages),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toTemplateView(template))
}

type updateTemplateRequest struct {
	Name        *string        `json:"name"`
	TransTypes  *string        `json:"trans_types"`
	AmountMin   *int64         `json:"amount_min"`
	AmountMax   *int64         `json:"amount_max"`
	AllowGap    *bool          `json:"allow_gap"`
	Enabled     *bool          `json:"enabled"`
	Description *string        `json:"description"`
	Stages      []stageRequest `json:"stages" binding:"omitempty,dive"`
}

func (h *RewardTemplateHandler) UpdateTemplate(c *gin.Context) {
	templateID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}
	var req updateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &rewarddto.UpdateTemplateInput{
		TemplateID:  templateID,
		Name:        req.Name,
		TransTypes:  req.TransTypes,
		AmountMin:   req.AmountMin,
		AmountMax:   req.AmountMax,
		AllowGap:    req.AllowGap,
		Enabled:     req.Enabled,
		Description: req.Description,
	}
	if req.Stages != nil {
		input.Stages = toStageInputs(req.Stages)
	}

	template, err := h.templateUC.UpdateTemplate(input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toTemplateView(template))
}

func (h *RewardTemplateHandler) GetTemplate(c *gin.Context) {
	templateID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}
	template, err := h.templateUC.GetTemplate(templateID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toTemplateView(template))
}

type listTemplatesQuery struct {
	Enabled  *bool `form:"enabled"`
	Page     int   `form:"page"`
	PageSize int   `form:"page_size"`
}

func (h *RewardTemplateHandler) ListTemplates(c *gin.Context) {
	var query listTemplatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.templateUC.ListTemplates(&rewarddto.ListTemplatesInput{
		Enabled:  query.Enabled,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	views := make([]TemplateView, len(output.List))
	for i, template := range output.List {
		views[i] = toTemplateView(template)
	}
	response.Page(c, views, output.Total, output.Page, output.PageSize)
}

type setTemplateStatusRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *RewardTemplateHandler) SetTemplateStatus(c *gin.Context) {
	templateID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid template id")
		return
	}
	var req setTemplateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.templateUC.SetTemplateEnabled(templateID, *req.Enabled); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
