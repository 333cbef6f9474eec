package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/config"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/handlers"
	"github.com/SewwRathnayaka/SOA/shared/registry"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("service", cfg.ServiceName, "env", cfg.Env)
	slog.SetDefault(logger)

	logger.Info("starting", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := config.BuildDependencies(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to build dependencies: %v", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Error("error closing dependencies", "error", err)
		}
	}()

	// Background workers: queue consumers and the context cache janitor.
	group, groupCtx := errgroup.WithContext(ctx)
	for _, consumer := range deps.Consumers {
		consumer := consumer
		group.Go(func() error {
			return consumer.Run(groupCtx)
		})
	}
	deps.Contexts.StartJanitor(groupCtx)

	// Register with the service registry once it is reachable.
	go deps.RegistryClient.RegisterWithRetry(groupCtx, &registry.ServiceRegistration{
		ServiceID:   "orchestrator-service",
		Name:        "Workflow Orchestrator",
		Category:    "orchestration",
		Provider:    "SOA",
		Description: "Order workflow and saga coordinator",
		Version:     "1.0.0",
		Interfaces: []registry.ServiceInterface{
			{
				Type:       "REST",
				Endpoint:   fmt.Sprintf("http://localhost:%s", cfg.Port),
				Operations: []string{"placeOrder", "getWorkflowStatus"},
			},
		},
	}, 5*time.Second)

	router := setupRouter(deps)
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := group.Wait(); err != nil {
		logger.Error("worker exited with error", "error", err)
	}

	logger.Info("stopped")
}

func setupRouter(deps *config.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	if deps.Telemetry != nil {
		r.Use(telemetry.Middleware(deps.Telemetry))
	}

	r.Handle("/metrics", handlers.NewMetricsHandler())

	deps.OrchestratorHandlers.RegisterRoutes(r)

	return r
}
