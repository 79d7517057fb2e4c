package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/agentreward"
	rewarddto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/reward"
)

type AgentRewardHandler struct {
	agentRewardUC agentreward.AgentRewardUsecase
}

func NewAgentRewardHandler(agentRewardUC agentreward.AgentRewardUsecase) *AgentRewardHandler {
	return &AgentRewardHandler{agentRewardUC: agentRewardUC}
}

type agentAmountView struct {
	AgentID      int64 `json:"agent_id"`
	TemplateID   int64 `json:"template_id"`
	RewardAmount int64 `json:"reward_amount"`
}

func (h *AgentRewardHandler) GetAmount(c *gin.Context) {
	agentID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid agent id")
		return
	}
	templateID, err := strconv.ParseInt(c.Query("template_id"), 10, 64)
	if err != nil || templateID <= 0 {
		response.BadRequest(c, "invalid template id")
		return
	}

	amount, err := h.agentRewardUC.GetAmount(agentID, templateID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, agentAmountView{
		AgentID:      amount.AgentID,
		TemplateID:   amount.TemplateID,
		RewardAmount: amount.RewardAmount,
	})
}

type setAgentAmountRequest struct {
	TemplateID   int64 `json:"template_id" binding:"required,min=1"`
	RewardAmount int64 `json:"reward_amount" binding:"min=0"`
}

func (h *AgentRewardHandler) SetAmount(c *gin.Context) {
	agentID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid agent id")
		return
	}
	var req setAgentAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	amount, err := h.agentRewardUC.SetAmount(&rewarddto.SetAgentAmountInput{
		AgentID:      agentID,
		TemplateID:   req.TemplateID,
		RewardAmount: req.RewardAmount,
		Operator:     OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, agentAmountView{
		AgentID:      amount.AgentID,
		TemplateID:   amount.TemplateID,
		RewardAmount: amount.RewardAmount,
	})
}
