package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lunarpay/settlement-reward-service/internal/config"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/handlers"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/middleware"
)

type Handlers struct {
	RewardTemplate  *handlers.RewardTemplateHandler
	AgentReward     *handlers.AgentRewardHandler
	Progress        *handlers.ProgressHandler
	Overflow        *handlers.OverflowHandler
	SettlementPrice *handlers.SettlementPriceHandler
	ChangeLog       *handlers.ChangeLogHandler
}

func NewRouter(cfg *config.SettlementConfig, h *Handlers) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Scrape endpoint stays outside the token guard.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1", middleware.Auth(cfg.AuthConfig.ServiceToken))

	rewards := v1.Group("/rewards")
	{
		rewards.GET("/templates", h.RewardTemplate.ListTemplates)
		rewards.POST("/templates", h.RewardTemplate.CreateTemplate)
		rewards.GET("/templates/:id", h.RewardTemplate.GetTemplate)
		rewards.PUT("/templates/:id", h.RewardTemplate.UpdateTemplate)
		rewards.PUT("/templates/:id/status", h.RewardTemplate.SetTemplateStatus)

		rewards.GET("/agents/:id/amount", h.AgentReward.GetAmount)
		rewards.PUT("/agents/:id/amount", h.AgentReward.SetAmount)

		rewards.GET("/terminals/:sn/progress", h.Progress.GetProgress)
		rewards.POST("/terminals/:sn/progress", h.Progress.InitProgress)
		rewards.DELETE("/terminals/:sn/progress", h.Progress.Terminate)
		rewards.POST("/terminals/:sn/advance", h.Progress.Advance)

		rewards.GET("/overflow-logs", h.Overflow.ListOverflowLogs)
		rewards.POST("/overflow-logs", h.Overflow.Record)
		rewards.POST("/overflow-logs/:id/resolve", h.Overflow.Resolve)
	}

	prices := v1.Group("/settlement-prices")
	{
		prices.GET("", h.SettlementPrice.ListSettlementPrices)
		prices.POST("", h.SettlementPrice.CreateSettlementPrice)
		prices.GET("/active", h.SettlementPrice.GetActiveSettlementPrice)
		prices.GET("/:id", h.SettlementPrice.GetSettlementPrice)
		prices.PUT("/:id/rate", h.SettlementPrice.UpdateRate)
		prices.PUT("/:id/deposit", h.SettlementPrice.UpdateDeposit)
		prices.PUT("/:id/sim", h.SettlementPrice.UpdateSim)
		prices.PUT("/:id/high-rate", h.SettlementPrice.UpdateHighRate)
		prices.PUT("/:id/d0-extra", h.SettlementPrice.UpdateD0Extra)
		prices.GET("/:id/change-logs", h.SettlementPrice.ListPriceChangeLogs)
	}

	v1.GET("/price-change-logs", h.ChangeLog.ListChangeLogs)

	return router
}
