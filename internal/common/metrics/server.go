package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck сообщает о состоянии зависимостей бота. nil означает, что всё в порядке.
type HealthCheck func(ctx context.Context) error

//nolint:revive // Имя MetricsServer используется для ясности
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
	port   int
}

func NewMetricsServer(port int, logger *slog.Logger, checks ...HealthCheck) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/health", healthHandler(logger, checks))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return &MetricsServer{
		server: server,
		logger: logger,
		port:   port,
	}
}

func (s *MetricsServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *MetricsServer) Start(ctx context.Context) error {
	s.logger.Info("Запуск сервера метрик",
		"port", s.port,
		"endpoint", "/metrics",
	)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Ошибка при остановке сервера метрик", "error", err)
		} else {
			s.logger.Info("Сервер метрик успешно остановлен")
		}
	}()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера метрик: %w", err)
	}

	return nil
}

func (s *MetricsServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func healthHandler(logger *slog.Logger, checks []HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				logger.Warn("Проверка состояния не пройдена", "error", err)

				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("UNAVAILABLE"))

				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
