package config

import (
	"reflect"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{Driver: StorageMemory},
		Redis:    RedisConfig{Driver: CacheMemory},
		JWT: JWTConfig{
			Secret:             "secret",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: time.Hour,
		},
		Server:  ServerConfig{Port: "8080"},
		Billing: BillingConfig{InvoiceDueDays: 30, OverdueInterval: time.Hour},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid memory config",
			mutate: func(*Config) {},
		},
		{
			name: "valid postgres with redis",
			mutate: func(c *Config) {
				c.Database.Driver = StoragePostgres
				c.Redis = RedisConfig{Driver: CacheRedis, Addr: "localhost:6379"}
			},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Server.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Server.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "unknown storage driver",
			mutate:      func(c *Config) { c.Database.Driver = "sqlite" },
			wantErr:     true,
			errorString: "unsupported DB_DRIVER 'sqlite'",
		},
		{
			name:        "redis without address",
			mutate:      func(c *Config) { c.Redis = RedisConfig{Driver: CacheRedis} },
			wantErr:     true,
			errorString: "REDIS_ADDR is required when CACHE_DRIVER=redis",
		},
		{
			name:        "empty secret",
			mutate:      func(c *Config) { c.JWT.Secret = "" },
			wantErr:     true,
			errorString: "JWT_SECRET must not be empty",
		},
		{
			name:        "negative due days",
			mutate:      func(c *Config) { c.Billing.InvoiceDueDays = -1 },
			wantErr:     true,
			errorString: "invalid INVOICE_DUE_DAYS -1: must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if err.Error() != tt.errorString {
					t.Fatalf("error = %q, want %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("CACHE_TTL", "not-a-duration")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("DB_PORT", "")

	cfg := LoadConfig()

	if cfg.Server.Port != "9090" || cfg.Database.Driver != StoragePostgres {
		t.Fatalf("env not applied: %+v", cfg.Server)
	}
	if cfg.Database.Port != "5432" {
		t.Fatalf("postgres should default to port 5432, got %s", cfg.Database.Port)
	}
	if cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("bad duration should fall back, got %s", cfg.Redis.TTL)
	}
	if cfg.Database.Seed {
		t.Fatal("SEED_DATA=false should disable seeding")
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, want) {
		t.Fatalf("origins = %v, want %v", cfg.CORS.AllowedOrigins, want)
	}
}
