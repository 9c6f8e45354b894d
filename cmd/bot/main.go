package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	appLogger, logCloser := logger.New(cfg)
	defer logCloser.Close()
	appLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %s, Interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.RetryInterval)

	bot, err := telegram.NewBot(cfg.TelegramToken, "", cfg.RequestTimeout)
	if err != nil {
		appLogger.Errorf("FATAL: Could not create Telegram bot: %v", err)
		logCloser.Close()
		os.Exit(1)
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID)

	practicumClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.RequestTimeout)
	watcher := app.NewStatusWatcher(practicumClient, notifier, appLogger)
	intervalScheduler := scheduler.NewIntervalScheduler(cfg.RetryInterval, appLogger)

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Application setup complete. Polling homework statuses...")
	_ = watcher.Run(ctx, intervalScheduler)
	appLogger.Info("Application shut down gracefully.")
}
