package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/changelog"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/settlement"
	settlementdto "github.com/lunarpay/settlement-reward-service/internal/usecase/dto/settlement"
)

type SettlementPriceHandler struct {
	settlementUC settlement.SettlementUsecase
	changeLogUC  changelog.ChangeLogUsecase
}

func NewSettlementPriceHandler(settlementUC settlement.SettlementUsecase, changeLogUC changelog.ChangeLogUsecase) *SettlementPriceHandler {
	return &SettlementPriceHandler{settlementUC: settlementUC, changeLogUC: changeLogUC}
}

type createSettlementPriceRequest struct {
	AgentID    int64  `json:"agent_id" binding:"required,min=1"`
	ChannelID  int64  `json:"channel_id" binding:"required,min=1"`
	TemplateID *int64 `json:"template_id"`
	BrandCode  string `json:"brand_code" binding:"max=32"`
}

func (h *SettlementPriceHandler) CreateSettlementPrice(c *gin.Context) {
	var req createSettlementPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.CreateSettlementPrice(&settlementdto.CreateSettlementPriceInput{
		AgentID:    req.AgentID,
		ChannelID:  req.ChannelID,
		TemplateID: req.TemplateID,
		BrandCode:  req.BrandCode,
		Operator:   OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type listSettlementPricesQuery struct {
	AgentID   *int64 `form:"agent_id"`
	ChannelID *int64 `form:"channel_id"`
	Status    *int16 `form:"status"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

func (h *SettlementPriceHandler) ListSettlementPrices(c *gin.Context) {
	var query listSettlementPricesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	output, err := h.settlementUC.ListSettlementPrices(domain.SettlementPriceFilter{
		AgentID:   query.AgentID,
		ChannelID: query.ChannelID,
		Status:    query.Status,
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	views := make([]SettlementPriceView, len(output.List))
	for i, price := range output.List {
		views[i] = toSettlementPriceView(price)
	}
	response.Page(c, views, output.Total, output.Page, output.PageSize)
}

type activePriceQuery struct {
	AgentID   int64  `form:"agent_id" binding:"required,min=1"`
	ChannelID int64  `form:"channel_id" binding:"required,min=1"`
	BrandCode string `form:"brand_code"`
}

func (h *SettlementPriceHandler) GetActiveSettlementPrice(c *gin.Context) {
	var query activePriceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.GetActiveSettlementPrice(query.AgentID, query.ChannelID, query.BrandCode)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

func (h *SettlementPriceHandler) GetSettlementPrice(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	price, err := h.settlementUC.GetSettlementPrice(priceID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type updateRateRequest struct {
	RateConfigs map[string]string `json:"rate_configs" binding:"required"`
}

func (h *SettlementPriceHandler) UpdateRate(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var req updateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.UpdateRate(&settlementdto.UpdateRateInput{
		PriceID:     priceID,
		RateConfigs: req.RateConfigs,
		Operator:    OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type depositTierRequest struct {
	DepositAmount  int64 `json:"deposit_amount" binding:"min=0"`
	CashbackAmount int64 `json:"cashback_amount" binding:"min=0"`
}

type updateDepositRequest struct {
	DepositCashbacks []depositTierRequest `json:"deposit_cashbacks" binding:"required,dive"`
}

func (h *SettlementPriceHandler) UpdateDeposit(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var req updateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tiers := make(domain.DepositCashbacks, len(req.DepositCashbacks))
	for i, tier := range req.DepositCashbacks {
		tiers[i] = domain.DepositCashbackItem{DepositAmount: tier.DepositAmount, CashbackAmount: tier.CashbackAmount}
	}

	price, err := h.settlementUC.UpdateDeposit(&settlementdto.UpdateDepositInput{
		PriceID:          priceID,
		DepositCashbacks: tiers,
		Operator:         OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type updateSimRequest struct {
	SimFirstCashback     int64 `json:"sim_first_cashback" binding:"min=0"`
	SimSecondCashback    int64 `json:"sim_second_cashback" binding:"min=0"`
	SimThirdPlusCashback int64 `json:"sim_third_plus_cashback" binding:"min=0"`
}

func (h *SettlementPriceHandler) UpdateSim(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var req updateSimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.UpdateSim(&settlementdto.UpdateSimInput{
		PriceID:              priceID,
		SimFirstCashback:     req.SimFirstCashback,
		SimSecondCashback:    req.SimSecondCashback,
		SimThirdPlusCashback: req.SimThirdPlusCashback,
		Operator:             OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type updateHighRateRequest struct {
	HighRateConfigs map[string]string `json:"high_rate_configs" binding:"required"`
}

func (h *SettlementPriceHandler) UpdateHighRate(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var req updateHighRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.UpdateHighRate(&settlementdto.UpdateHighRateInput{
		PriceID:         priceID,
		HighRateConfigs: req.HighRateConfigs,
		Operator:        OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type updateD0ExtraRequest struct {
	D0ExtraConfigs map[string]int64 `json:"d0_extra_configs" binding:"required"`
}

func (h *SettlementPriceHandler) UpdateD0Extra(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var req updateD0ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	price, err := h.settlementUC.UpdateD0Extra(&settlementdto.UpdateD0ExtraInput{
		PriceID:        priceID,
		D0ExtraConfigs: req.D0ExtraConfigs,
		Operator:       OperatorFromContext(c),
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, toSettlementPriceView(price))
}

type priceChangeLogsQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (h *SettlementPriceHandler) ListPriceChangeLogs(c *gin.Context) {
	priceID, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid settlement price id")
		return
	}
	var query priceChangeLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	logs, total, err := h.changeLogUC.ListBySettlementPrice(priceID, query.Page, query.PageSize)
	if err != nil {
		response.FromError(c, err)
		return
	}
	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	response.Page(c, toChangeLogViews(logs), total, page, pageSize)
}
