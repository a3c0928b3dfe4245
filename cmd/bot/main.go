package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// The configured logger needs the config, so report through a default one.
		logrus.WithError(err).Fatal("Required environment variables are missing at startup")
	}

	log, closeLog, err := logger.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Could not initialize logger")
	}
	defer closeLog()
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":    cfg.LogLevel,
		"environment":  cfg.Environment,
		"retry_period": cfg.RetryPeriod,
		"chat_id":      cfg.TelegramChatID,
	}).Info("Configuration loaded")

	svcLogger := log.WithField("service", "homework_status_bot")

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, cfg.RequestTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, svcLogger)

	client := practicum.New(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout, svcLogger)
	poller := app.NewPoller(client, notifier, homework.DefaultVerdicts(), time.Now().Unix(), svcLogger)

	pollScheduler, err := scheduler.NewPollScheduler(cfg.RetryPeriod, svcLogger)
	if err != nil {
		mainLogger.WithError(err).Fatal("Invalid RETRY_PERIOD")
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Debug("Bot started")
	if err := pollScheduler.Run(ctx, poller.Cycle); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll scheduler stopped unexpectedly")
	}

	mainLogger.Info("Shutting down application...")
	fmt.Fprintln(os.Stdout, "Бот выключен.")
}
