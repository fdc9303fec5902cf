package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "petsync/docs"
	pg "petsync/internal/adapters/storage/postgres"
	"petsync/internal/platform/config"
	"petsync/internal/platform/logger"
	"petsync/internal/router"
)

// @title PetSync API
// @version 1.0
// @description API de gestión de mascotas: usuarios, mascotas y sus registros alimentarios, médicos y de actividad diaria.
// @BasePath /api/v1
func main() {
	// .env es opcional: en deploy las vars vienen del entorno.
	_ = godotenv.Load()

	log, err := logger.NewFromEnv()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuración inválida", zap.Error(err))
	}

	opts := router.Options{Config: cfg, Logger: log}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Fatal("no se pudo conectar a Postgres", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		if err := pg.Migrate(db); err != nil {
			log.Fatal("migraciones fallidas", zap.Error(err))
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN vacío: usando repositorios in-memory (modo dev)")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown forzado", zap.Error(err))
	}
}
