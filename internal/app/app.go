// Package app monta as peças comuns aos executáveis: catálogo, banco,
// fontes e monitor.
package app

import (
	"context"
	"fmt"

	"catalogo-bot/config"
	"catalogo-bot/internal/catalog"
	"catalogo-bot/internal/database"
	"catalogo-bot/internal/display"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/monitor"
	"catalogo-bot/internal/scraper"
)

// App guarda as dependências já inicializadas
type App struct {
	Config   *config.Config
	Catalog  *config.CatalogFile
	Images   *display.ImageMap
	DB       *database.DB
	Catalogs *catalog.Registry
	Monitor  *monitor.Monitor
	Log      *logger.Logger
}

// New lê o arquivo de catálogo, abre o banco e prepara o monitor
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	file, err := config.LoadCatalog(cfg.CatalogConfigPath)
	if err != nil {
		return nil, err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar banco de dados: %w", err)
	}

	retry := scraper.DefaultRetryPolicy()
	retry.MaxAttempts = cfg.FetchMaxRetries

	catalogs := catalog.NewRegistry(file.Slugs()...)
	mon := monitor.New(monitor.Options{
		Empresas: file.Empresas,
		Catalogs: catalogs,
		Sources:  scraper.NewRegistry(cfg.FetchTimeout),
		Store:    db,
		Retry:    retry,
		Interval: cfg.RefreshInterval,
		Logger:   log.With("componente", "monitor"),
	})

	return &App{
		Config:   cfg,
		Catalog:  file,
		Images:   display.NewImageMap(file.PlaceholderImage, file.Images),
		DB:       db,
		Catalogs: catalogs,
		Monitor:  mon,
		Log:      log,
	}, nil
}

// StartMonitor roda o monitor em segundo plano até o contexto acabar
func (a *App) StartMonitor(ctx context.Context) {
	go a.Monitor.Start(ctx)
}

// Close fecha o banco
func (a *App) Close() error {
	return a.DB.Close()
}
