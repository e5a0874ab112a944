// /internal/config/config.go
package config

import (
	"fmt"
	"os"
)

// Config reúne tudo que o app lê do ambiente. O carregamento do .env
// fica no main (godotenv); aqui só leitura e validação.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL não encontrado no ambiente")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET não encontrado no ambiente")
	}
	return cfg, nil
}
