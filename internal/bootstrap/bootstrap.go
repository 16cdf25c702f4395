package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kroue/AlertX/internal/config"
	"github.com/kroue/AlertX/internal/domain/model"
	"github.com/kroue/AlertX/internal/domain/repository"
	"github.com/kroue/AlertX/internal/infrastructure/cache"
	"github.com/kroue/AlertX/internal/infrastructure/database"
	"github.com/kroue/AlertX/internal/infrastructure/firestore"
	repoImpl "github.com/kroue/AlertX/internal/repository"
)

// Dependencies adapters selected by configuration. Incidents is nil without Supabase.
type Dependencies struct {
	Zones     repository.ZonesRepository
	Alerts    repository.AlertsRepository
	Cache     repository.KeyValueCache
	Incidents repository.IncidentsRepository

	closers []func() error
}

// Close releases every opened client, newest first
func (d *Dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil {
			log.Printf("⚠️ Close failed: %v", err)
		}
	}
}

// Build opens the adapters named by cfg. On error everything opened so far is closed.
func Build(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	deps := &Dependencies{}
	ok := false
	defer func() {
		if !ok {
			deps.Close()
		}
	}()

	if err := deps.buildZones(ctx, cfg); err != nil {
		return nil, err
	}
	if err := deps.buildAlerts(ctx, cfg); err != nil {
		return nil, err
	}
	if err := deps.buildCache(cfg); err != nil {
		return nil, err
	}
	if err := deps.buildIncidents(cfg); err != nil {
		return nil, err
	}

	ok = true
	return deps, nil
}

func (d *Dependencies) buildZones(ctx context.Context, cfg *config.Config) error {
	if cfg.Zones.Source != config.ZonesPostgres {
		zones := model.DefaultZones()
		if cfg.Zones.AreasFile != "" {
			raw, err := os.ReadFile(cfg.Zones.AreasFile)
			if err != nil {
				return fmt.Errorf("zone areas: %w", err)
			}
			if zones, err = repoImpl.AttachZoneAreas(zones, raw); err != nil {
				return err
			}
		}
		log.Printf("✅ Using static zone reference data")
		d.Zones = repoImpl.NewStaticZonesRepository(zones)
		return nil
	}

	pg, err := database.NewPostgreSQLClient(ctx, cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("zones database: %w", err)
	}
	d.closers = append(d.closers, pg.Close)
	log.Printf("✅ Using PostgreSQL zone reference data")
	d.Zones = repoImpl.NewPostgresZonesRepository(pg)
	return nil
}

func (d *Dependencies) buildAlerts(ctx context.Context, cfg *config.Config) error {
	if cfg.Dispatch.Mode != config.DispatchFirestore {
		delay := time.Duration(cfg.Dispatch.SimulatedDelayMS) * time.Millisecond
		log.Printf("⚠️ Simulated alert delivery enabled (delay %s)", delay)
		d.Alerts = repoImpl.NewSimulatedAlertsRepository(delay)
		return nil
	}

	fs, err := firestore.NewFirestoreClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		return fmt.Errorf("alert delivery: %w", err)
	}
	d.closers = append(d.closers, fs.Close)
	d.Alerts = repoImpl.NewFirestoreAlertsRepository(fs.GetClient())
	return nil
}

func (d *Dependencies) buildCache(cfg *config.Config) error {
	if cfg.Cache.Driver != config.CacheValkey {
		d.Cache = cache.NewMemoryCache()
		return nil
	}

	vc, err := cache.NewValkeyCache(cfg.Valkey.Addr)
	if err != nil {
		return fmt.Errorf("boundary cache: %w", err)
	}
	d.closers = append(d.closers, func() error { vc.Close(); return nil })
	d.Cache = vc
	return nil
}

func (d *Dependencies) buildIncidents(cfg *config.Config) error {
	if !cfg.Supabase.Enabled() {
		log.Printf("⚠️ Supabase not configured, incident reporting disabled")
		return nil
	}

	sb, err := database.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	if err != nil {
		return fmt.Errorf("incident storage: %w", err)
	}
	if err := sb.HealthCheck(); err != nil {
		return fmt.Errorf("incident storage: %w", err)
	}
	log.Printf("✅ Supabase client ready: %s", sb.URL())
	d.Incidents = repoImpl.NewSupabaseIncidentsRepository(sb)
	return nil
}
