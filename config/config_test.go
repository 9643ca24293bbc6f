package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"catalogo-bot/internal/models"
)

func createTempCatalogFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalogo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp catalog file: %v", err)
	}

	return path
}

const validCatalogYAML = `
empresas:
  - slug: "Demo"
    name: "Demo Store"
    sheet_url: "https://docs.google.com/spreadsheets/d/e/XYZ/pubhtml"
  - slug: "local"
    name: "Local"
    file: "./stock.csv"
    default_category: "ipad"
placeholder_image: "/devices/placeholder.png"
images:
  "iphone 13_black": "/devices/iphone 13 negro.png"
`

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("REFRESH_INTERVAL_MINUTES", "")
	t.Setenv("API_PORT", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("MAX_RESULTS_PER_MESSAGE", "")

	cfg := Load()

	if cfg.RefreshInterval != 15*time.Minute {
		t.Errorf("RefreshInterval = %v, want 15m", cfg.RefreshInterval)
	}

	if cfg.APIPort != "8080" || cfg.MaxResultsPerMessage != 40 {
		t.Errorf("defaults not applied: %+v", cfg)
	}

	if cfg.TelegramChatID != 0 {
		t.Errorf("TelegramChatID = %d, want 0", cfg.TelegramChatID)
	}

	if !errors.Is(cfg.ValidateBot(), ErrMissingBotToken) {
		t.Error("expected ErrMissingBotToken")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("REFRESH_INTERVAL_MINUTES", "5")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "10")
	t.Setenv("BOT_EMPRESA", "Demo")
	t.Setenv("MAX_RESULTS_PER_MESSAGE", "-3")

	cfg := Load()

	if cfg.TelegramChatID != -100200 {
		t.Errorf("TelegramChatID = %d", cfg.TelegramChatID)
	}

	if cfg.RefreshInterval != 5*time.Minute || cfg.FetchTimeout != 10*time.Second {
		t.Errorf("durations = %v / %v", cfg.RefreshInterval, cfg.FetchTimeout)
	}

	if cfg.BotEmpresa != "demo" {
		t.Errorf("BotEmpresa = %q, want demo", cfg.BotEmpresa)
	}

	// valor negativo cai no padrão
	if cfg.MaxResultsPerMessage != 40 {
		t.Errorf("MaxResultsPerMessage = %d, want 40", cfg.MaxResultsPerMessage)
	}

	if err := cfg.ValidateBot(); err != nil {
		t.Errorf("ValidateBot: %v", err)
	}
}

func TestLoadCatalog_Valid(t *testing.T) {
	cat, err := LoadCatalog(createTempCatalogFile(t, validCatalogYAML))
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if got := cat.Slugs(); len(got) != 2 || got[0] != "demo" {
		t.Errorf("Slugs = %v", got)
	}

	demo, err := cat.Find("DEMO")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}

	if demo.DefaultCategory != models.CategoryIPhone {
		t.Errorf("default category = %s, want iphone", demo.DefaultCategory)
	}

	local, _ := cat.Find("local")
	if local.Source() != "./stock.csv" {
		t.Errorf("Source = %q", local.Source())
	}

	if cat.Images["iphone 13_black"] == "" || cat.PlaceholderImage == "" {
		t.Errorf("images not loaded: %+v", cat)
	}

	if _, err := cat.Find("nope"); !errors.Is(err, ErrEmpresaNotFound) {
		t.Errorf("Find(nope) err = %v", err)
	}
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"no empresas", "empresas: []\n", ErrNoEmpresas},
		{"missing slug", "empresas:\n  - name: x\n    file: a.csv\n", ErrEmpresaMissingSlug},
		{"invalid slug", "empresas:\n  - slug: 'a b'\n    file: a.csv\n", ErrEmpresaInvalidSlug},
		{"duplicated", "empresas:\n  - slug: a\n    file: a.csv\n  - slug: A\n    file: b.csv\n", ErrEmpresaDuplicated},
		{"missing source", "empresas:\n  - slug: a\n", ErrEmpresaMissingSource},
		{"bad category", "empresas:\n  - slug: a\n    file: a.csv\n    default_category: tv\n", ErrInvalidDefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(createTempCatalogFile(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
