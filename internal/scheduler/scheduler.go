package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/central-university-dev/go-reactbot/internal/common/metrics"
)

// StoreFlusher записывает на диск изменения, накопленные в памяти (например, счётчики срабатываний).
type StoreFlusher interface {
	Flush(ctx context.Context) error
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	store     StoreFlusher
	logger    *slog.Logger
	interval  time.Duration
}

func NewScheduler(store StoreFlusher, interval time.Duration, logger *slog.Logger) *Scheduler {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Scheduler{
		scheduler: scheduler,
		store:     store,
		logger:    logger,
		interval:  interval,
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Запуск планировщика сохранения реакций",
		"interval", s.interval.String(),
	)

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.flush)
	if err != nil {
		s.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.logger.Info("Остановка планировщика")
	s.scheduler.Stop()
}

func (s *Scheduler) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	err := s.store.Flush(ctx)
	metrics.RecordStoreFlush(err)

	if err != nil {
		s.logger.Error("Ошибка при периодическом сохранении реакций",
			"error", err,
		)
	}
}
