package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"catalogo-bot/config"
	"catalogo-bot/internal/app"
	"catalogo-bot/internal/bot"
	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/observability"

	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	cfg := config.Load()
	if err := cfg.ValidateBot(); err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}
	lg := logger.NewLogger(cfg.LogLevel)

	application, err := app.New(cfg, lg)
	if err != nil {
		log.Fatalf("Erro ao inicializar: %v", err)
	}
	defer application.Close()

	// O bot atende uma empresa; sem BOT_EMPRESA usa a primeira do arquivo
	slug := cfg.BotEmpresa
	if slug == "" {
		slug = application.Catalog.Empresas[0].Slug
	}
	empresa, err := application.Catalog.Find(slug)
	if err != nil {
		log.Fatalf("Erro ao escolher empresa do bot: %v", err)
	}

	telegramBot, err := bot.Init(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("Erro ao inicializar bot do Telegram: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	observability.Start(cfg.MetricsPort)

	// Iniciar monitoramento em background
	application.StartMonitor(ctx)

	handler := bot.New(bot.Options{
		Sender:      telegramBot,
		Catalogs:    application.Catalogs,
		Empresa:     empresa,
		Refresher:   application.Monitor,
		AdminChatID: cfg.TelegramChatID,
		MaxResults:  cfg.MaxResultsPerMessage,
		Logger:      lg.With("componente", "bot", "empresa", empresa.Slug),
	})

	lg.Info("Bot iniciado", "empresa", empresa.Slug)
	bot.Run(ctx, telegramBot, handler)

	log.Println("Encerrando bot...")
}
