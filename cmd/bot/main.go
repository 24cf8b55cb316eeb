package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/central-university-dev/go-reactbot/internal/bot/cache"
	"github.com/central-university-dev/go-reactbot/internal/bot/clients"
	"github.com/central-university-dev/go-reactbot/internal/bot/domain"
	"github.com/central-university-dev/go-reactbot/internal/bot/repository/file"
	botservice "github.com/central-university-dev/go-reactbot/internal/bot/service"
	"github.com/central-university-dev/go-reactbot/internal/bot/telegram"
	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
	"github.com/central-university-dev/go-reactbot/internal/common/middleware"
	"github.com/central-university-dev/go-reactbot/internal/config"
	domainerrors "github.com/central-university-dev/go-reactbot/internal/domain/errors"
	"github.com/central-university-dev/go-reactbot/internal/scheduler"
	"github.com/central-university-dev/go-reactbot/pkg"
)

type components struct {
	poller     *telegram.Poller
	scheduler  *scheduler.Scheduler
	store      *file.RuleRepository
	redisUsage *cache.RedisUsageCounter
}

func gracefulShutdown(c *components, stopCh <-chan struct{}, cancel context.CancelFunc, appLogger *slog.Logger) error {
	<-stopCh
	appLogger.Info("Получен сигнал завершения")

	c.poller.Stop()
	c.scheduler.Stop()
	cancel()

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	var err error

	if flushErr := c.store.Flush(ctx); flushErr != nil {
		err = multierr.Append(err, fmt.Errorf("ошибка при сохранении реакций: %w", flushErr))
	}

	if c.redisUsage != nil {
		if closeErr := c.redisUsage.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("ошибка при закрытии соединения с Redis: %w", closeErr))
		}
	}

	if err != nil {
		appLogger.Error("Ошибки при остановке бота",
			"error", err,
		)

		return err
	}

	appLogger.Info("Бот успешно остановлен")

	return nil
}

func setupTelegramCommands(telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []domain.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
		{Command: "help", Description: "Получить справку о командах"},
		{Command: "react", Description: "Управление реакциями: list, add, edit, remove, usage"},
	}

	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func listenSignals(stopCh chan<- struct{}, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
		close(stopCh)
	}()
}

// newUsageCounter подключается к Redis, если он настроен. При ошибке подключения статистика хранится в памяти.
func newUsageCounter(cfg *config.Config, appLogger *slog.Logger) (botservice.UsageCounter, *cache.RedisUsageCounter) {
	if cfg.RedisURL == "" {
		appLogger.Info("Redis не настроен, статистика срабатываний хранится в памяти")
		return cache.NewMemoryUsageCounter(), nil
	}

	redisUsage, err := cache.NewRedisUsageCounter(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis, статистика будет храниться в памяти",
			"error", err,
		)

		return cache.NewMemoryUsageCounter(), nil
	}

	appLogger.Info("Статистика срабатываний хранится в Redis")

	return redisUsage, redisUsage
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	cfg := config.LoadConfig()

	appLogger := pkg.NewLogger(os.Stdout, cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		return errors.New("не задан TELEGRAM_BOT_TOKEN")
	}

	moderatorIDs, err := cfg.ModeratorIDList()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	if len(moderatorIDs) == 0 {
		appLogger.Warn("MODERATOR_IDS не задан, изменять реакции может любой пользователь")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := file.NewRuleRepository(cfg.RulesPath, appLogger)

	if err := store.Load(ctx); err != nil {
		var persistence *domainerrors.ErrPersistence
		if !errors.As(err, &persistence) {
			return fmt.Errorf("ошибка загрузки реакций: %w", err)
		}

		appLogger.Warn("Файл реакций не прочитан, начинаем с пустого списка",
			"error", err,
		)
	}

	usage, redisUsage := newUsageCounter(cfg, appLogger)

	telegramClient := clients.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramAPIEndpoint, cfg.ImagesDir, appLogger)
	if telegramClient.GetBot() == nil {
		return errors.New("не удалось создать Telegram клиента")
	}

	setupTelegramCommands(telegramClient, appLogger)

	limiter := middleware.NewChatRateLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow, appLogger)

	botService := botservice.NewBotService(
		store,
		usage,
		telegramClient,
		limiter,
		botservice.Options{
			ModeratorIDs: moderatorIDs,
			FooterLabel:  cfg.FooterLabel,
		},
		appLogger,
	)

	var healthChecks []metrics.HealthCheck
	if redisUsage != nil {
		healthChecks = append(healthChecks, redisUsage.Ping)
	}

	metricsServer := metrics.NewMetricsServer(cfg.BotMetricsPort, appLogger, healthChecks...)

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			appLogger.Error("Ошибка сервера метрик",
				"error", err,
			)
		}
	}()

	flushScheduler := scheduler.NewScheduler(store, cfg.StoreFlushInterval, appLogger)
	flushScheduler.Start()

	poller := telegram.NewPoller(telegramClient, botService, cfg.HTTPRequestTimeout, appLogger)
	poller.Start()

	stopCh := make(chan struct{})
	listenSignals(stopCh, appLogger)

	return gracefulShutdown(&components{
		poller:     poller,
		scheduler:  flushScheduler,
		store:      store,
		redisUsage: redisUsage,
	}, stopCh, cancel, appLogger)
}
