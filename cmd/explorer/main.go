package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"role-explorer/internal/customroles"
	"role-explorer/internal/explorer"
	explorerServices "role-explorer/internal/explorer/services"
	"role-explorer/internal/server"
	"role-explorer/pkg/app"
	"role-explorer/pkg/config"
	"role-explorer/pkg/handlers"
	"role-explorer/pkg/metrics"
	"role-explorer/pkg/module"
	"role-explorer/pkg/permissions"
	"role-explorer/pkg/sandbox"
	"role-explorer/pkg/version"

	"github.com/prometheus/client_golang/prometheus"
	_ "go.uber.org/automaxprocs"
)

func main() {
	log.Printf("🏷️  Role Explorer %s | Build: %s", version.Short(), version.BuildDate)
	log.Printf("🖥️  CPUs: %d | GOMAXPROCS: %d", runtime.NumCPU(), runtime.GOMAXPROCS(0))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appCtx, err := app.InitializeApp(ctx, config.GetServiceName())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	catalog := permissions.Default()
	simulator, err := sandbox.New(catalog)
	if err != nil {
		log.Fatalf("Failed to initialize sandbox: %v", err)
	}

	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if config.IsMetricsEnabled() {
		registry = metrics.NewRegistry()
		m = metrics.New(registry)
	}

	store, err := customroles.StoreFor(appCtx)
	if err != nil {
		log.Fatalf("Failed to select custom role store: %v", err)
	}
	customRolesModule := customroles.NewModule(catalog, store, simulator, m)
	if err := customRolesModule.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize custom roles: %v", err)
	}
	explorerModule := explorer.NewModule(explorerServices.NewService(catalog, customRolesModule.Service(), simulator, m))

	modules := []module.Module{explorerModule, customRolesModule}

	checks := map[string]handlers.HealthCheck{}
	for name, check := range appCtx.HealthChecks() {
		checks[name] = check
	}

	apiPrefix := config.GetAPIPrefix()
	handler, _ := server.New(server.Options{
		ServiceName:    appCtx.ServiceName,
		APIPrefix:      apiPrefix,
		AllowedOrigins: config.GetCORSAllowedOrigins(),
		RequestTimeout: config.GetRequestTimeout(),
		Catalog:        catalog,
		HealthChecks:   checks,
		Metrics:        m,
		Registry:       registry,
	}, modules...)

	for _, mod := range modules {
		go mod.StartBackgroundTasks(ctx)
	}

	srv := &http.Server{
		Addr:         config.GetHost() + ":" + config.GetPort(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("🚀 Server: http://%s%s | OpenAPI: %s/openapi.json | Store: %s", srv.Addr, apiPrefix, apiPrefix, appCtx.StoreBackend)

	go func() {
		slog.Info("Starting role explorer server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Received shutdown signal, initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	for _, mod := range modules {
		mod.Stop()
	}
	cancel()

	appCtx.Shutdown(shutdownCtx)
	slog.Info("Role explorer shutdown completed")
}
