package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingBotToken é devolvido quando o bot sobe sem token
var ErrMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN não configurado")

// Config contém as configurações da aplicação
type Config struct {
	TelegramBotToken       string
	TelegramChatID         int64
	RefreshIntervalMinutes int
	RefreshInterval        time.Duration
	DatabasePath           string
	CatalogConfigPath      string
	APIPort                string
	APIAdminToken          string
	MetricsPort            string
	LogLevel               string
	BotEmpresa             string
	MaxResultsPerMessage   int
	FetchMaxRetries        int
	FetchTimeout           time.Duration
}

// Load carrega as configurações das variáveis de ambiente
func Load() *Config {
	cfg := &Config{
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		RefreshIntervalMinutes: envInt("REFRESH_INTERVAL_MINUTES", 15),
		DatabasePath:           envString("DATABASE_PATH", "./catalogo.db"),
		CatalogConfigPath:      envString("CATALOG_CONFIG", "./catalogo.yaml"),
		APIPort:                envString("API_PORT", "8080"),
		APIAdminToken:          strings.TrimSpace(os.Getenv("API_ADMIN_TOKEN")),
		MetricsPort:            envString("METRICS_PORT", "9090"),
		LogLevel:               envString("LOG_LEVEL", "info"),
		BotEmpresa:             strings.ToLower(os.Getenv("BOT_EMPRESA")),
		MaxResultsPerMessage:   envInt("MAX_RESULTS_PER_MESSAGE", 40),
		FetchMaxRetries:        envInt("FETCH_MAX_RETRIES", 3),
		FetchTimeout:           time.Duration(envInt("FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	// Chat ID é opcional; quando existe libera os comandos de administração
	if chatIDStr := os.Getenv("TELEGRAM_CHAT_ID"); chatIDStr != "" {
		if chatID, err := strconv.ParseInt(chatIDStr, 10, 64); err == nil {
			cfg.TelegramChatID = chatID
		}
	}

	cfg.RefreshInterval = time.Duration(cfg.RefreshIntervalMinutes) * time.Minute

	return cfg
}

// ValidateBot confere o que o bot precisa para subir
func (c *Config) ValidateBot() error {
	if c.TelegramBotToken == "" {
		return ErrMissingBotToken
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt só aceita inteiros positivos; o resto cai no padrão
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}
