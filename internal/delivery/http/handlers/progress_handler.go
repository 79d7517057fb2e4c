package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/progress"
	progressdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/progress"
)

type ProgressHandler struct {
	progressUC progress.ProgressUsecase
}

func NewProgressHandler(progressUC progress.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{progressUC: progressUC}
}

type initProgressRequest struct {
	AgentID    int64      `json:"agent_id" binding:"required,min=1"`
	TemplateID int64      `json:"template_id" binding:"required,min=1"`
	BindTime   *time.Time `json:"bind_time"`
}

func (h *ProgressHandler) InitProgress(c *gin.Context) {
	terminalSN := c.Param("sn")
	var req initProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.progressUC.InitProgress(&progressdto.InitProgressInput{
		TerminalSN: terminalSN,
		AgentID:    req.AgentID,
		TemplateID: req.TemplateID,
		BindTime:   req.BindTime,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toProgressView(created, nil))
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	detail, err := h.progressUC.GetProgress(c.Param("sn"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toProgressView(detail.Progress, detail.StageRewards))
}

type advanceRequest struct {
	ObservedValue int64 `json:"observed_value" binding:"min=0"`
}

type advanceView struct {
	StageOrder     int    `json:"stage_order"`
	StageStatus    string `json:"stage_status"`
	RewardAmount   *int64 `json:"reward_amount"`
	ProgressStatus string `json:"progress_status"`
	Changed        bool   `json:"changed"`
}

func (h *ProgressHandler) Advance(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.progressUC.Advance(&progressdto.AdvanceInput{
		TerminalSN:    c.Param("sn"),
		ObservedValue: req.ObservedValue,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, advanceView{
		StageOrder:     result.StageOrder,
		StageStatus:    string(result.StageStatus),
		RewardAmount:   result.RewardAmount,
		ProgressStatus: string(result.ProgressStatus),
		Changed:        result.Changed,
	})
}

func (h *ProgressHandler) Terminate(c *gin.Context) {
	if err := h.progressUC.Terminate(c.Param("sn")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
