package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hqin8/tractor-backend/internal/config"
	"github.com/hqin8/tractor-backend/internal/httpapi"
	"github.com/hqin8/tractor-backend/internal/hub"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.Dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	h := hub.NewHub(ctx, log.Named("hub"))

	// Build the router *with* the hub injected
	handler := httpapi.SetupRoutes(h, log.Named("ws"), cfg.OriginPatterns)

	log.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
