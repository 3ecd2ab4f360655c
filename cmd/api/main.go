package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog/internal/config"
	"product-catalog/internal/logger"
	"product-catalog/internal/routes"
	"product-catalog/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	var productStore store.ProductStore
	if cfg.MongoURI != "" {
		client, err := store.Dial(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect from mongodb", "error", err)
			}
		}()
		productStore = store.NewMongoStore(client.Database(cfg.MongoDB))
		log.Info("using mongodb store", "database", cfg.MongoDB)
	} else {
		productStore = store.NewMemoryStore()
		log.Warn("MONGO_URI not set, using in-memory store")
	}

	router := routes.NewRouter(productStore, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
