package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kroue/AlertX/internal/application"
	"github.com/kroue/AlertX/internal/bootstrap"
	"github.com/kroue/AlertX/internal/config"
	"github.com/kroue/AlertX/internal/domain/service"
	"github.com/kroue/AlertX/internal/handler"
	"github.com/kroue/AlertX/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Startup failed: %v", err)
	}
	defer deps.Close()

	zones, err := deps.Zones.GetAll(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load zones: %v", err)
	}
	locator, err := service.NewZoneLocator(zones)
	if err != nil {
		log.Fatalf("❌ Failed to index zones: %v", err)
	}

	identity := handler.ContextIdentity{}
	gate := service.NewSubmissionGate(deps.Alerts, identity)

	sessions := usecase.NewAlertSessionUseCase(deps.Zones, deps.Cache, gate, service.PreviewUnlessEdited, cfg.Sessions.IdleTimeout)
	if cfg.Sessions.IdleTimeout > 0 {
		go sessions.RunEvictor(ctx, cfg.Sessions.SweepInterval)
	}

	handlers := handler.Handlers{
		Sessions: handler.NewAlertSessionHandler(sessions),
		Alerts: handler.NewAlertsHandler(usecase.NewAlertsFeedUseCase(deps.Alerts, cfg.Alerts.FeedLimit)),
		Zones:  handler.NewZonesHandler(deps.Zones),
	}
	if deps.Incidents != nil {
		handlers.Incidents = handler.NewIncidentsHandler(
			application.NewIncidentsService(deps.Incidents, locator, identity),
		)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           handler.NewRouter(handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 AlertX server starting on %s (dispatch=%s, zones=%s, cache=%s)",
			srv.Addr, cfg.Dispatch.Mode, cfg.Zones.Source, cfg.Cache.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("⚠️ Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Shutdown error: %v", err)
	}
}
