package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/overflow"
)

type OverflowHandler struct {
	overflowUC overflow.OverflowUsecase
}

func NewOverflowHandler(overflowUC overflow.OverflowUsecase) *OverflowHandler {
	return &OverflowHandler{overflowUC: overflowUC}
}

type listOverflowQuery struct {
	Resolved *bool `form:"resolved"`
	Page     int   `form:"page"`
	PageSize int   `form:"page_size"`
}

func (h *OverflowHandler) ListOverflowLogs(c *gin.Context) {
	var query listOverflowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.overflowUC.ListOverflowLogs(query.Resolved, query.Page, query.PageSize)
	if err != nil {
		response.FromError(c, err)
		return
	}
	views := make([]OverflowLogView, len(logs))
	for i, log := range logs {
		views[i] = toOverflowLogView(log)
	}
	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	response.Page(c, views, total, page, pageSize)
}

type agentChainLinkRequest struct {
	AgentID    int64  `json:"agent_id" binding:"required,min=1"`
	AgentName  string `json:"agent_name"`
	Level      int    `json:"level" binding:"min=0"`
	RewardRate string `json:"reward_rate" binding:"required"`
}

type recordOverflowRequest struct {
	TerminalSN    string                  `json:"terminal_sn" binding:"required,max=50"`
	StageRewardID *int64                  `json:"stage_reward_id"`
	AgentChain    []agentChainLinkRequest `json:"agent_chain" binding:"required,dive"`
	TotalRate     string                  `json:"total_rate" binding:"required"`
	RewardAmount  int64                   `json:"reward_amount" binding:"min=0"`
	ErrorMessage  string                  `json:"error_message"`
}

func (h *OverflowHandler) Record(c *gin.Context) {
	var req recordOverflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	chain := make(domain.AgentChain, len(req.AgentChain))
	for i, link := range req.AgentChain {
		chain[i] = domain.AgentChainInfo{
			AgentID:    link.AgentID,
			AgentName:  link.AgentName,
			Level:      link.Level,
			RewardRate: link.RewardRate,
		}
	}

	log, err := h.overflowUC.Record(&domain.RewardOverflowLog{
		TerminalSN:    req.TerminalSN,
		StageRewardID: req.StageRewardID,
		AgentChain:    chain,
		TotalRate:     req.TotalRate,
		RewardAmount:  req.RewardAmount,
		ErrorMessage:  req.ErrorMessage,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toOverflowLogView(log))
}

type resolveOverflowRequest struct {
	ResolvedBy string `json:"resolved_by" binding:"required,max=64"`
}

func (h *OverflowHandler) Resolve(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid overflow log id")
		return
	}
	var req resolveOverflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	log, err := h.overflowUC.Resolve(logID, req.ResolvedBy)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toOverflowLogView(log))
}
