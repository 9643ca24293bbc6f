package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogo-bot/config"
	"catalogo-bot/internal/api"
	"catalogo-bot/internal/app"
	"catalogo-bot/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	cfg := config.Load()
	lg := logger.NewLogger(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := app.New(cfg, lg)
	if err != nil {
		log.Fatalf("Erro ao inicializar: %v", err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application.StartMonitor(ctx)

	handler := api.NewHandler(api.Options{
		Empresas:   application.Catalog.Empresas,
		Catalogs:   application.Catalogs,
		Images:     application.Images,
		Ingestions: application.DB,
		Refresher:  application.Monitor,
		Logger:     lg.With("componente", "api"),
	})
	if cfg.APIAdminToken == "" {
		lg.Warn("API_ADMIN_TOKEN vazio, recarga pela API desativada")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           api.NewRouter(handler, cfg.APIAdminToken),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("API iniciada", "porta", cfg.APIPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Falha ao subir a API: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Encerrando API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("Erro ao encerrar API", "erro", err)
	}
}
