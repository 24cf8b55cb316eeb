package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// usageKey - хеш Redis: поле = имя реакции, значение = число срабатываний.
const usageKey = "react:usage"

type RedisUsageCounter struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisUsageCounter(redisURL, password string, db int, logger *slog.Logger) (*RedisUsageCounter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisUsageCounter{
		client: client,
		logger: logger,
	}, nil
}

func (c *RedisUsageCounter) Increment(ctx context.Context, name string) error {
	if err := c.client.HIncrBy(ctx, usageKey, name, 1).Err(); err != nil {
		c.logger.Error("Ошибка при увеличении счётчика использования в Redis",
			"error", err,
			"rule", name,
		)

		return fmt.Errorf("ошибка при увеличении счётчика использования в Redis: %w", err)
	}

	return nil
}

func (c *RedisUsageCounter) Usage(ctx context.Context) (map[string]int64, error) {
	values, err := c.client.HGetAll(ctx, usageKey).Result()
	if err != nil {
		c.logger.Error("Ошибка при получении статистики из Redis",
			"error", err,
		)

		return nil, fmt.Errorf("ошибка при получении статистики из Redis: %w", err)
	}

	usage := make(map[string]int64, len(values))

	for name, raw := range values {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.logger.Warn("Некорректное значение счётчика в Redis",
				"rule", name,
				"value", raw,
			)

			continue
		}

		usage[name] = count
	}

	return usage, nil
}

func (c *RedisUsageCounter) Reset(ctx context.Context, name string) error {
	if err := c.client.HDel(ctx, usageKey, name).Err(); err != nil {
		c.logger.Error("Ошибка при удалении счётчика из Redis",
			"error", err,
			"rule", name,
		)

		return fmt.Errorf("ошибка при удалении счётчика из Redis: %w", err)
	}

	return nil
}

func (c *RedisUsageCounter) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisUsageCounter) Close() error {
	return c.client.Close()
}
