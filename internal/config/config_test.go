package config

import (
	"testing"
	"time"
)

var envVars = []string{
	"APP_ENV",
	"SERVER_PORT",
	"STORE_DRIVER",
	"AUTO_MIGRATE",
	"DATABASE_URL",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSL_MODE",
	"DB_MAX_CONNS",
	"DB_MIN_CONNS",
	"REDIS_ADDR",
	"REDIS_DB",
	"CACHE_TTL",
	"ID_PREFIX",
	"IMPORT_BATCH_SIZE",
	"IMPORT_CONCURRENCY",
	"IMPORT_MAX_FILE_MB",
	"CAROUSEL_MAX_FILE_MB",
	"LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envVars {
		t.Setenv(env, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverPostgres {
			t.Errorf("StoreDriver = %v, want postgres", cfg.StoreDriver)
		}
		if !cfg.AutoMigrate {
			t.Errorf("AutoMigrate = false, want true")
		}
		if cfg.DBName != "modakk" {
			t.Errorf("DBName = %v, want modakk", cfg.DBName)
		}
		if cfg.IDPrefix != "MDK" {
			t.Errorf("IDPrefix = %v, want MDK", cfg.IDPrefix)
		}
		if cfg.ImportBatchSize != 100 {
			t.Errorf("ImportBatchSize = %v, want 100", cfg.ImportBatchSize)
		}
		if cfg.ImportMaxFileBytes != 50<<20 {
			t.Errorf("ImportMaxFileBytes = %v, want 50 MB", cfg.ImportMaxFileBytes)
		}
		if cfg.CarouselMaxBytes != 5<<20 {
			t.Errorf("CarouselMaxBytes = %v, want 5 MB", cfg.CarouselMaxBytes)
		}
		if cfg.RedisAddr != "" {
			t.Errorf("RedisAddr = %v, want empty", cfg.RedisAddr)
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
		}
		if cfg.IsDevelopment() {
			t.Errorf("IsDevelopment() = true, want false")
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "Development")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("STORE_DRIVER", "MEMORY")
		t.Setenv("AUTO_MIGRATE", "false")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("CACHE_TTL", "30s")
		t.Setenv("ID_PREFIX", "KGB")
		t.Setenv("IMPORT_BATCH_SIZE", "250")
		t.Setenv("IMPORT_CONCURRENCY", "4")
		t.Setenv("IMPORT_MAX_FILE_MB", "10")
		t.Setenv("CAROUSEL_MAX_FILE_MB", "1")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if !cfg.IsDevelopment() {
			t.Errorf("IsDevelopment() = false, want true")
		}
		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.StoreDriver != StoreDriverMemory {
			t.Errorf("StoreDriver = %v, want memory", cfg.StoreDriver)
		}
		if cfg.AutoMigrate {
			t.Errorf("AutoMigrate = true, want false")
		}
		if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
			t.Errorf("Redis = %v/%v, want redis:6379/2", cfg.RedisAddr, cfg.RedisDB)
		}
		if cfg.CacheTTL != 30*time.Second {
			t.Errorf("CacheTTL = %v, want 30s", cfg.CacheTTL)
		}
		if cfg.IDPrefix != "KGB" {
			t.Errorf("IDPrefix = %v, want KGB", cfg.IDPrefix)
		}
		if cfg.ImportBatchSize != 250 || cfg.ImportConcurrency != 4 {
			t.Errorf("Import = %v/%v, want 250/4", cfg.ImportBatchSize, cfg.ImportConcurrency)
		}
		if cfg.ImportMaxFileBytes != 10<<20 || cfg.CarouselMaxBytes != 1<<20 {
			t.Errorf("limits = %v/%v, want 10 MB/1 MB", cfg.ImportMaxFileBytes, cfg.CarouselMaxBytes)
		}
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "not-a-port")
		t.Setenv("AUTO_MIGRATE", "maybe")
		t.Setenv("CACHE_TTL", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if !cfg.AutoMigrate {
			t.Errorf("AutoMigrate = false, want true")
		}
		if cfg.CacheTTL != 5*time.Minute {
			t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{"unknown store driver", map[string]string{"STORE_DRIVER": "sqlite"}, true},
		{"zero batch size", map[string]string{"IMPORT_BATCH_SIZE": "0"}, true},
		{"zero concurrency", map[string]string{"IMPORT_CONCURRENCY": "0"}, true},
		{"zero upload limit", map[string]string{"IMPORT_MAX_FILE_MB": "0"}, true},
		{"memory store needs no database", map[string]string{"STORE_DRIVER": "memory", "DB_HOST": "", "DB_USER": ""}, false},
		{"database url alone", map[string]string{"DATABASE_URL": "postgres://u:p@db:5432/x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPoolConfig(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://u:p@db:5432/x", DBMaxConns: 7}
	pc := cfg.PoolConfig()

	if pc.ConnString() != "postgres://u:p@db:5432/x" {
		t.Errorf("ConnString() = %v", pc.ConnString())
	}
	if pc.MaxConns != 7 {
		t.Errorf("MaxConns = %v, want 7", pc.MaxConns)
	}
}
