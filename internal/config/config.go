package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"raiderCompanion"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"raidercompanion"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET"`
	}

	OCR struct {
		Language            string        `envconfig:"OCR_LANGUAGE" default:"eng"`
		Timeout             time.Duration `envconfig:"OCR_TIMEOUT" default:"30s"`
		ConfidenceThreshold float64       `envconfig:"OCR_CONFIDENCE_THRESHOLD" default:"0.7"`
	}

	GameData struct {
		BaseURL string `envconfig:"GAMEDATA_BASE_URL" default:"https://metaforge.app/api/arc-raiders"`
		Token   string `envconfig:"GAMEDATA_TOKEN"`
	}

	TUI struct {
		UserID string `envconfig:"TUI_USER_ID" default:"local"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
