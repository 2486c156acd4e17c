package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/xavierca1/greenapi-console/internal/config"
	"github.com/xavierca1/greenapi-console/internal/infra/database"
	"github.com/xavierca1/greenapi-console/internal/infra/http/handlers"
	"github.com/xavierca1/greenapi-console/internal/infra/http/web"
	"github.com/xavierca1/greenapi-console/internal/infra/integration/greenapi"
	"github.com/xavierca1/greenapi-console/internal/infra/render"
	"github.com/xavierca1/greenapi-console/internal/locale"
	"github.com/xavierca1/greenapi-console/internal/usecase"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	catalog := locale.Lookup(cfg.Locale)

	// 1. Config store
	db, err := database.Open(cfg.DatabaseURL, cfg.StorePath)
	if err != nil {
		log.Fatalf("❌ Config store unavailable: %v", err)
	}
	defer db.Close()
	credentialsRepo := database.NewCredentialsRepository(db)

	// 2. Page
	page, err := web.ParsePage()
	if err != nil {
		log.Fatalf("❌ Page template missing: %v", err)
	}

	// 3. Console
	client := greenapi.NewClient()
	console := usecase.NewConsole(credentialsRepo, client, catalog, cfg.APIURL)
	console.Restore(context.Background())

	// 4. Handlers
	consoleHandler := handlers.NewConsoleHandler(console, render.NewRenderer(render.DefaultStyle), catalog, page)
	healthHandler := handlers.NewHealthHandler(credentialsRepo, console, version)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handlers.NewRouter(consoleHandler, healthHandler, cfg.CORSOrigins, cfg.RateLimit),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🔥 GREEN-API console listening on %s (locale %s)", cfg.HTTPAddr, catalog.Code)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ HTTP server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("⚠️ Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), greenapi.RequestTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown: %v", err)
	}
}
