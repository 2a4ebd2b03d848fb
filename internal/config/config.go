package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config представляет конфигурацию прокси RSS-ленты.
// Все параметры задаются переменными окружения; для локальной разработки
// поддерживается файл .env.
type Config struct {
	UpstreamURL  string        `envconfig:"UPSTREAM_URL" default:"https://www.iraqinews.com/rss/"`
	FilterPrefix string        `envconfig:"FILTER_PREFIX" default:"https://www.iraqinews.com/iraq/"`
	Port         int           `envconfig:"PORT" default:"8080"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"10s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	RateLimit    int           `envconfig:"RATE_LIMIT" default:"30"`
	RateBurst    int           `envconfig:"RATE_BURST" default:"5"`
}

// Load загружает конфигурацию из переменных окружения.
// Отсутствие файла .env не является ошибкой: в продакшене переменные
// приходят из окружения процесса.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}

// Validate проверяет корректность конфигурации.
// Пустой FILTER_PREFIX допустим: в этом случае прокси отдает ленту без фильтрации.
// Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.UpstreamURL); err != nil {
		return fmt.Errorf("invalid UPSTREAM_URL %q: %w", c.UpstreamURL, err)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be in range 1-65535, got %d", c.Port)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.FetchTimeout)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be a positive number, got %d", c.RateLimit)
	}
	if c.RateBurst <= 0 {
		return fmt.Errorf("RATE_BURST must be a positive number, got %d", c.RateBurst)
	}
	return nil
}

// Address возвращает адрес для прослушивания входящих соединений.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}
