package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/lunarpay/settlement-reward-service/internal/app/background"
	"github.com/lunarpay/settlement-reward-service/internal/app/setup"
	"github.com/lunarpay/settlement-reward-service/internal/config"
	httpdelivery "github.com/lunarpay/settlement-reward-service/internal/delivery/http"
	"github.com/lunarpay/settlement-reward-service/internal/delivery/http/handlers"
	"github.com/lunarpay/settlement-reward-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	cfg := config.MustLoad()
	setupLogger(cfg.LogConfig)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.PricePublisher.Close()
	defer deps.RewardPublisher.Close()

	if cfg.Migrations.Enabled {
		if err := migrate.RunMigrations(deps.DB, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases := setup.InitializeUseCases(deps)

	tasks := background.NewBackgroundTasks(usecases.ProgressUsecase, cfg)
	tasks.StartAll(context.Background())

	router := httpdelivery.NewRouter(cfg, &httpdelivery.Handlers{
		RewardTemplate:  handlers.NewRewardTemplateHandler(usecases.TemplateUsecase),
		AgentReward:     handlers.NewAgentRewardHandler(usecases.AgentRewardUsecase),
		Progress:        handlers.NewProgressHandler(usecases.ProgressUsecase),
		Overflow:        handlers.NewOverflowHandler(usecases.OverflowUsecase),
		SettlementPrice: handlers.NewSettlementPriceHandler(usecases.SettlementUsecase, usecases.ChangeLogUsecase),
		ChangeLog:       handlers.NewChangeLogHandler(usecases.ChangeLogUsecase),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("http server starting", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
