package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultTelegramAPIEndpoint = "https://api.telegram.org/bot%s/%s"

type Config struct {
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	BotMetricsPort   int    `mapstructure:"BOT_METRICS_PORT"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`

	// TelegramAPIEndpoint - шаблон адреса Bot API, например для локального telegram-bot-api сервера.
	TelegramAPIEndpoint string `mapstructure:"TELEGRAM_API_ENDPOINT"`

	RulesPath          string        `mapstructure:"RULES_PATH"`
	ImagesDir          string        `mapstructure:"IMAGES_DIR"`
	StoreFlushInterval time.Duration `mapstructure:"STORE_FLUSH_INTERVAL"`

	// ModeratorIDs - идентификаторы пользователей Telegram через запятую.
	ModeratorIDs string `mapstructure:"MODERATOR_IDS"`
	FooterLabel  string `mapstructure:"FOOTER_LABEL"`

	// Пустой REDIS_URL означает, что статистика срабатываний хранится в памяти.
	RedisURL      string `mapstructure:"REDIS_URL"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	HTTPRequestTimeout time.Duration `mapstructure:"HTTP_REQUEST_TIMEOUT"`

	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
}

func LoadConfig() *Config {
	setDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return getDefaultConfig()
	}

	config.applyFallbacks()

	return config
}

// applyFallbacks заменяет непригодные значения на значения по умолчанию:
// нулевой лимит запретил бы все срабатывания, а нулевое окно сняло бы ограничение совсем.
func (c *Config) applyFallbacks() {
	defaults := getDefaultConfig()

	if c.RateLimitRequests <= 0 {
		c.RateLimitRequests = defaults.RateLimitRequests
	}

	if c.RateLimitWindow <= 0 {
		c.RateLimitWindow = defaults.RateLimitWindow
	}

	if c.StoreFlushInterval <= 0 {
		c.StoreFlushInterval = defaults.StoreFlushInterval
	}

	if c.HTTPRequestTimeout <= 0 {
		c.HTTPRequestTimeout = defaults.HTTPRequestTimeout
	}
}

// ModeratorIDList разбирает MODERATOR_IDS. Пустое значение даёт пустой список.
func (c *Config) ModeratorIDList() ([]int64, error) {
	var ids []int64

	for _, part := range strings.Split(c.ModeratorIDs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("некорректный идентификатор модератора '%s': %w", part, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func setDefaults() {
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_API_ENDPOINT", defaultTelegramAPIEndpoint)
	viper.SetDefault("BOT_METRICS_PORT", 9094)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("RULES_PATH", "data/reactions/reactions.yaml")
	viper.SetDefault("IMAGES_DIR", "data/reactions/images")
	viper.SetDefault("STORE_FLUSH_INTERVAL", "1m")

	viper.SetDefault("MODERATOR_IDS", "")
	viper.SetDefault("FOOTER_LABEL", "react list")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("HTTP_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", "20s")
}

func getDefaultConfig() *Config {
	return &Config{
		BotMetricsPort: 9094,
		LogLevel:       "info",

		TelegramAPIEndpoint: defaultTelegramAPIEndpoint,

		RulesPath:          "data/reactions/reactions.yaml",
		ImagesDir:          "data/reactions/images",
		StoreFlushInterval: 1 * time.Minute,

		FooterLabel: "react list",

		HTTPRequestTimeout: 10 * time.Second,

		RateLimitRequests: 5,
		RateLimitWindow:   20 * time.Second,
	}
}
