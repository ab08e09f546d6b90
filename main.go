package main

import (
	"net/http"

	"docstore/config"
	"docstore/internal/document/store"
	"docstore/pkg/logger"
	"docstore/router"
	"docstore/socket"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	defer logger.Log.Sync()

	if cfg.JWTSecret == "" {
		logger.Sugar.Warn("DOCSTORE_JWT_SECRET is not set; all API requests will be rejected")
	}

	docStore := store.NewDocumentStore()

	// The hub's event loop runs for the process lifetime.
	hub := socket.NewHub()
	go hub.Run()

	handler := router.Setup(docStore, hub)

	logger.Sugar.Infof("docstore listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
