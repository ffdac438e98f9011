package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"JWT_SECRET",
		"ACCESS_TOKEN_TTL",
		"REFRESH_TOKEN_TTL",
		"MEDIA_BUCKET",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("fails without JWT_SECRET", func(t *testing.T) {
		_, err := Load()
		if err == nil {
			t.Fatal("Load() expected error when JWT_SECRET is unset")
		}
	})

	t.Run("default values", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		defer os.Unsetenv("JWT_SECRET")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "videotube" {
			t.Errorf("DBName = %v, want videotube", cfg.DBName)
		}
		if cfg.AccessTokenTTL != 15*time.Minute {
			t.Errorf("AccessTokenTTL = %v, want 15m", cfg.AccessTokenTTL)
		}
		if cfg.RefreshTokenTTL != 240*time.Hour {
			t.Errorf("RefreshTokenTTL = %v, want 240h", cfg.RefreshTokenTTL)
		}
		if cfg.MediaBucket != "videotube-media" {
			t.Errorf("MediaBucket = %v, want videotube-media", cfg.MediaBucket)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("ACCESS_TOKEN_TTL", "30m")
		defer func() {
			os.Unsetenv("JWT_SECRET")
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("DB_PORT")
			os.Unsetenv("ACCESS_TOKEN_TTL")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.AccessTokenTTL != 30*time.Minute {
			t.Errorf("AccessTokenTTL = %v, want 30m", cfg.AccessTokenTTL)
		}
	})

	t.Run("rejects refresh ttl shorter than access ttl", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("ACCESS_TOKEN_TTL", "1h")
		os.Setenv("REFRESH_TOKEN_TTL", "30m")
		defer func() {
			os.Unsetenv("JWT_SECRET")
			os.Unsetenv("ACCESS_TOKEN_TTL")
			os.Unsetenv("REFRESH_TOKEN_TTL")
		}()

		if _, err := Load(); err == nil {
			t.Fatal("Load() expected error when REFRESH_TOKEN_TTL <= ACCESS_TOKEN_TTL")
		}
	})

	t.Run("ignores malformed numeric values", func(t *testing.T) {
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("DB_PORT", "not-a-number")
		defer func() {
			os.Unsetenv("JWT_SECRET")
			os.Unsetenv("DB_PORT")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want default 5432", cfg.DBPort)
		}
	})
}
