package container

import (
	"io"

	"github.com/rs/zerolog"

	"denoise-bench/config"
	telegram "denoise-bench/internal/api/telegram"
	app "denoise-bench/internal/application"
	"denoise-bench/internal/domain/port"
	"denoise-bench/internal/infrastructure/filter"
	"denoise-bench/internal/infrastructure/imagefile"
	"denoise-bench/internal/infrastructure/storage"
	"denoise-bench/internal/logger"
)

type Container struct {
	Registry         *filter.Registry
	BenchmarkService *app.BenchmarkService
}

func New(cfg *config.Config, out io.Writer, log zerolog.Logger) *Container {
	registry := filter.NewRegistry()

	// Уведомления необязательны: без токена или при ошибке авторизации работаем без них
	var notifier port.Notifier
	if cfg.NotifyEnabled() {
		n, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID, logger.Component(log, "telegram"))
		if err != nil {
			log.Warn().Err(err).Msg("telegram notifier disabled")
		} else {
			notifier = n
		}
	}

	benchmarkService := app.NewBenchmarkService(
		registry,
		imagefile.NewStore(),
		storage.NewMemoryRunRepository(),
		notifier,
		out,
		logger.Component(log, "harness"),
	)

	return &Container{
		Registry:         registry,
		BenchmarkService: benchmarkService,
	}
}
