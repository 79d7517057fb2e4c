package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/response"
	"github.com/lunarpay/settlement-reward-service/internal/domain"
	"github.com/lunarpay/settlement-reward-service/internal/usecase/changelog"
)

type ChangeLogHandler struct {
	changeLogUC changelog.ChangeLogUsecase
}

func NewChangeLogHandler(changeLogUC changelog.ChangeLogUsecase) *ChangeLogHandler {
	return &ChangeLogHandler{changeLogUC: changeLogUC}
}

type listChangeLogsQuery struct {
	AgentID    *int64 `form:"agent_id"`
	ChannelID  *int64 `form:"channel_id"`
	ChangeType *int16 `form:"change_type"`
	ConfigType *int16 `form:"config_type"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

func (h *ChangeLogHandler) ListChangeLogs(c *gin.Context) {
	var query listChangeLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	filter := domain.ChangeLogFilter{
		AgentID:   query.AgentID,
		ChannelID: query.ChannelID,
		Page:      query.Page,
		PageSize:  query.PageSize,
	}
	if query.ChangeType != nil {
		changeType := domain.ChangeType(*query.ChangeType)
		filter.ChangeType = &changeType
	}
	if query.ConfigType != nil {
		configType := domain.ConfigType(*query.ConfigType)
		filter.ConfigType = &configType
	}
	if query.StartDate != "" {
		from, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			response.BadRequest(c, "start_date must be YYYY-MM-DD")
			return
		}
		filter.DateFrom = &from
	}
	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			response.BadRequest(c, "end_date must be YYYY-MM-DD")
			return
		}
		// End date is inclusive.
		to := parsed.AddDate(0, 0, 1)
		filter.DateTo = &to
	}

	logs, total, err := h.changeLogUC.ListChangeLogs(filter)
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
