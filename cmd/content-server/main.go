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

	"github.com/joho/godotenv"

	"sitecontent/internal/cms"
	"sitecontent/internal/config"
	"sitecontent/internal/content"
	"sitecontent/internal/relay"
	"sitecontent/internal/server"
)

func main() {
	// Root context cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "[content-server] ", log.LstdFlags|log.Lshortfile)

	// Local development keeps its settings in .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	cmsClient := cms.NewClient(cfg.CMSBaseURL, cfg.CMSToken, httpClient, logger)
	if !cmsClient.Enabled() {
		logger.Println("no content api configured, serving default content")
	}

	pages := content.NewService(cmsClient, content.DefaultContent(), cfg.PageSize, logger)
	relayHandler := relay.NewHandler(cfg.MediaHost, cfg.RelayMaxAge, httpClient, logger)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.New(pages, relayHandler, logger).Router(),
	}

	go func() {
		logger.Printf("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("HTTP server error: %v", err)
		}
	}()

	logger.Println("service started")

	// Block until we receive a signal / ctx cancelled
	<-ctx.Done()
	logger.Println("shutdown signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("HTTP server shutdown error: %v", err)
	}

	logger.Println("shutdown complete")
}
