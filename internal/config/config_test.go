package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable that could leak in from the developer's shell
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORT", "FIRESTORE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS",
		"SUPABASE_URL", "SUPABASE_ANON_KEY", "SUPABASE_DB_PASSWORD",
		"ALERTX_SERVER_PORT", "ALERTX_DISPATCH_MODE", "ALERTX_CACHE_DRIVER",
		"ALERTX_ZONES_SOURCE", "ALERTX_POSTGRES_DSN", "ALERTX_ALERTS_FEED_LIMIT",
		"ALERTX_FIRESTORE_PROJECT_ID", "ALERTX_SESSIONS_IDLE_TIMEOUT", "ALERTX_SESSIONS_SWEEP_INTERVAL",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DispatchSimulated, cfg.Dispatch.Mode)
	assert.Equal(t, 1500, cfg.Dispatch.SimulatedDelayMS)
	assert.Equal(t, ZonesStatic, cfg.Zones.Source)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, "localhost:6379", cfg.Valkey.Addr)
	assert.Equal(t, 20, cfg.Alerts.FeedLimit)
	assert.Equal(t, 30*time.Minute, cfg.Sessions.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Sessions.SweepInterval)
	assert.False(t, cfg.Supabase.Enabled())
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALERTX_CACHE_DRIVER", CacheValkey)
	t.Setenv("ALERTX_ALERTS_FEED_LIMIT", "5")
	t.Setenv("PORT", "9090")
	t.Setenv("FIRESTORE_PROJECT_ID", "brgy26-alerts")
	t.Setenv("ALERTX_DISPATCH_MODE", DispatchFirestore)
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("ALERTX_SESSIONS_IDLE_TIMEOUT", "2h")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, cfg.Sessions.IdleTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, CacheValkey, cfg.Cache.Driver)
	assert.Equal(t, 5, cfg.Alerts.FeedLimit)
	assert.Equal(t, DispatchFirestore, cfg.Dispatch.Mode)
	assert.Equal(t, "brgy26-alerts", cfg.Firestore.ProjectID)
	assert.True(t, cfg.Supabase.Enabled())
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "firestore without project",
			env:  map[string]string{"ALERTX_DISPATCH_MODE": DispatchFirestore},
			want: "firestore.project_id is required",
		},
		{
			name: "unknown cache driver",
			env:  map[string]string{"ALERTX_CACHE_DRIVER": "redis"},
			want: "cache.driver must be",
		},
		{
			name: "postgres without dsn",
			env:  map[string]string{"ALERTX_ZONES_SOURCE": ZonesPostgres},
			want: "postgres.dsn",
		},
		{
			name: "negative session timeout",
			env:  map[string]string{"ALERTX_SESSIONS_IDLE_TIMEOUT": "-5m"},
			want: "sessions.idle_timeout must not be negative",
		},
		{
			name: "bad port",
			env:  map[string]string{"PORT": "70000"},
			want: "server.port must be 1-65535",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(viper.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{Postgres: PostgresConfig{DSN: "postgres://local/zones"}}
	assert.Equal(t, "postgres://local/zones", cfg.PostgresDSN())

	cfg = &Config{
		Supabase: SupabaseConfig{URL: "https://abc.supabase.co/"},
		Postgres: PostgresConfig{Password: "secret"},
	}
	assert.Equal(t,
		"host=db.abc.supabase.co port=6543 user=postgres password=secret dbname=postgres sslmode=require",
		cfg.PostgresDSN(),
	)

	cfg = &Config{Supabase: SupabaseConfig{URL: "https://abc.supabase.co"}}
	assert.Empty(t, cfg.PostgresDSN())
}
