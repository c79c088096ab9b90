package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartkitchen/internal/ai"
	"smartkitchen/internal/api"
	"smartkitchen/internal/config"
	"smartkitchen/internal/database"
	"smartkitchen/internal/metrics"
	"smartkitchen/internal/store"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	seedDemo    = flag.Bool("seed", true, "Seed demo data when the database is empty")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort > 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	if err := database.InitDB(cfg.Database.Dialect, cfg.Database.Source); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := store.New(database.GetDB())
	if *seedDemo {
		if err := store.Seed(database.GetDB(), time.Now()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	var aiService *ai.Service
	if cfg.OpenAIKey != "" {
		aiService, err = ai.NewService(cfg.OpenAIKey)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
	} else {
		log.Println("No OpenAI key configured, AI endpoints disabled")
	}

	collector := metrics.NewCollector()

	server := api.NewServer(db, aiService, collector, api.Options{
		DaysThreshold: cfg.Suggestions.DaysThreshold,
		MenuSize:      cfg.Suggestions.MenuSize,
		AuthEnabled:   cfg.Auth.Enabled,
		AuthSecret:    cfg.Auth.Secret,
	})

	go startMetricsServer(cfg.Server.MetricsPort, collector)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(port int, collector *metrics.Collector) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
