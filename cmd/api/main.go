package main

import (
	"net/http"
	"os"
	"time"

	"gallos-breeding-api/internal/adapters/auth/jwtauth"
	"gallos-breeding-api/internal/platform/config"
	"gallos-breeding-api/internal/platform/logger"
	"gallos-breeding-api/internal/ports/auth"
	"gallos-breeding-api/internal/router"
)

// @title Gallos Breeding API
// @version 1.0
// @description API de crianza de gallos: registros, genealogía, topes, vacunas, inversiones, pagos y suscripciones.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Sin SECRET_KEY corre en modo dev: claims por headers de debug.
	var verifier auth.AuthVerifier
	if cfg.SecretKey != "" {
		verifier = jwtauth.NewVerifier(cfg.SecretKey)
	} else if !cfg.IsLocal() {
		log.Warn("SECRET_KEY vacío fuera de local, la API queda en modo dev", nil)
	}

	r := router.NewRouter(router.Options{
		Config:       &cfg,
		Log:          log,
		AuthVerifier: verifier,
	})

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr, "env": cfg.Environment})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
