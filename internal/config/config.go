package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"moneydash"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"moneydash"`
	}

	Auth struct {
		// Single shared password for the whole dashboard.
		Password   string        `envconfig:"APP_PASSWORD" required:"true"`
		JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
		SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	}

	History struct {
		// Date from which the real-estate/debt exclusion adjustment applies
		// to history snapshots.
		CutoverDate string `envconfig:"HISTORY_CUTOVER_DATE" default:"2025-12-25"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Cutover parses the configured history cutover date.
func (c *Config) Cutover() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, c.History.CutoverDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing HISTORY_CUTOVER_DATE: %w", err)
	}

	return t, nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
