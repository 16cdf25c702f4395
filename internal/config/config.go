package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DispatchFirestore = "firestore"
	DispatchSimulated = "simulated"

	ZonesStatic   = "static"
	ZonesPostgres = "postgres"

	CacheMemory = "memory"
	CacheValkey = "valkey"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Dispatch  DispatchConfig  `mapstructure:"dispatch"`
	Firestore FirestoreConfig `mapstructure:"firestore"`
	Zones     ZonesConfig     `mapstructure:"zones"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Supabase  SupabaseConfig  `mapstructure:"supabase"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Sessions  SessionsConfig  `mapstructure:"sessions"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DispatchConfig struct {
	Mode             string `mapstructure:"mode"`
	SimulatedDelayMS int    `mapstructure:"simulated_delay_ms"`
}

type FirestoreConfig struct {
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type ZonesConfig struct {
	Source    string `mapstructure:"source"`
	AreasFile string `mapstructure:"areas_file"` // optional GeoJSON outlines for static zones
}

type PostgresConfig struct {
	DSN      string `mapstructure:"dsn"`
	Password string `mapstructure:"password"`
}

type SupabaseConfig struct {
	URL     string `mapstructure:"url"`
	AnonKey string `mapstructure:"anon_key"`
}

// Enabled incident reporting needs both values
func (s SupabaseConfig) Enabled() bool {
	return s.URL != "" && s.AnonKey != ""
}

type CacheConfig struct {
	Driver string `mapstructure:"driver"`
}

type ValkeyConfig struct {
	Addr string `mapstructure:"addr"`
}

type AlertsConfig struct {
	FeedLimit int `mapstructure:"feed_limit"`
}

// SessionsConfig idle_timeout 0 keeps composer sessions until they are closed
type SessionsConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// PostgresDSN explicit dsn, or the Supabase pooler connection derived from the project URL
func (c *Config) PostgresDSN() string {
	if c.Postgres.DSN != "" {
		return c.Postgres.DSN
	}
	if c.Supabase.URL == "" || c.Postgres.Password == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.TrimPrefix(c.Supabase.URL, "https://"), "http://")
	host = strings.TrimSuffix(host, "/")
	return fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, c.Postgres.Password,
	)
}

// legacy environment names used by existing deployments
var envAliases = map[string]string{
	"server.port":                "PORT",
	"firestore.project_id":       "FIRESTORE_PROJECT_ID",
	"firestore.credentials_file": "GOOGLE_APPLICATION_CREDENTIALS",
	"supabase.url":               "SUPABASE_URL",
	"supabase.anon_key":          "SUPABASE_ANON_KEY",
	"postgres.password":          "SUPABASE_DB_PASSWORD",
}

// Load reads configuration from defaults, an optional config.yaml and the environment.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("dispatch.mode", DispatchSimulated)
	v.SetDefault("dispatch.simulated_delay_ms", 1500)
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.credentials_file", "")
	v.SetDefault("zones.source", ZonesStatic)
	v.SetDefault("zones.areas_file", "")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anon_key", "")
	v.SetDefault("cache.driver", CacheMemory)
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("alerts.feed_limit", 20)
	v.SetDefault("sessions.idle_timeout", "30m")
	v.SetDefault("sessions.sweep_interval", "1m")

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig()

	// ALERTX_DISPATCH_MODE → dispatch.mode
	v.SetEnvPrefix("ALERTX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envAliases {
		if err := v.BindEnv(key, "ALERTX_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}

	switch c.Dispatch.Mode {
	case DispatchSimulated:
		if c.Dispatch.SimulatedDelayMS < 0 {
			errs = append(errs, "dispatch.simulated_delay_ms must not be negative")
		}
	case DispatchFirestore:
		if c.Firestore.ProjectID == "" {
			errs = append(errs, "firestore.project_id is required when dispatch.mode is firestore")
		}
	default:
		errs = append(errs, fmt.Sprintf("dispatch.mode must be %s or %s, got %q", DispatchFirestore, DispatchSimulated, c.Dispatch.Mode))
	}

	switch c.Zones.Source {
	case ZonesStatic:
	case ZonesPostgres:
		if c.PostgresDSN() == "" {
			errs = append(errs, "postgres.dsn (or supabase.url with SUPABASE_DB_PASSWORD) is required when zones.source is postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("zones.source must be %s or %s, got %q", ZonesStatic, ZonesPostgres, c.Zones.Source))
	}

	switch c.Cache.Driver {
	case CacheMemory:
	case CacheValkey:
		if c.Valkey.Addr == "" {
			errs = append(errs, "valkey.addr is required when cache.driver is valkey")
		}
	default:
		errs = append(errs, fmt.Sprintf("cache.driver must be %s or %s, got %q", CacheMemory, CacheValkey, c.Cache.Driver))
	}

	if c.Alerts.FeedLimit <= 0 {
		errs = append(errs, "alerts.feed_limit must be positive")
	}

	if c.Sessions.IdleTimeout < 0 {
		errs = append(errs, "sessions.idle_timeout must not be negative")
	}
	if c.Sessions.IdleTimeout > 0 && c.Sessions.SweepInterval <= 0 {
		errs = append(errs, "sessions.sweep_interval must be positive when sessions.idle_timeout is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
