package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cleberrangel/planning-poker/internal/model"
	"github.com/joho/godotenv"
)

// Config armazena as configurações da aplicação
type Config struct {
	LogLevel    string
	LogJSON     bool
	ServiceName string
}

// Load carrega as configurações do ambiente
func Load() (*Config, error) {
	// Tenta carregar .env de múltiplos locais
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	cfg := &Config{
		LogLevel:    os.Getenv("LOG_LEVEL"),
		ServiceName: os.Getenv("SERVICE_NAME"),
	}

	if raw := os.Getenv("LOG_JSON"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: LOG_JSON=%q", model.ErrInvalidConfig, raw)
		}
		cfg.LogJSON = v
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "planning-poker"
	}

	return cfg, nil
}
