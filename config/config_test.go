package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("PRICEBOARD_SERVER_PORT")
		os.Unsetenv("PRICEBOARD_SERVER_ENVIRONMENT")
		os.Unsetenv("PRICEBOARD_MATCHING_MIN_SCORE_THRESHOLD")
		os.Unsetenv("PRICEBOARD_MATCHING_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("PRICEBOARD_RATELIMIT_PER_CLIENT")
		os.Unsetenv("PRICEBOARD_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.MinScoreThreshold != 60 {
			t.Errorf("Matching.MinScoreThreshold = %v, want 60", cfg.Matching.MinScoreThreshold)
		}
		if cfg.Matching.EnableDebugLogging {
			t.Error("Matching.EnableDebugLogging = true, want false")
		}
		if cfg.RateLimit.PerClient != 20 {
			t.Errorf("RateLimit.PerClient = %v, want 20", cfg.RateLimit.PerClient)
		}
		if cfg.RateLimit.Burst != 40 {
			t.Errorf("RateLimit.Burst = %d, want 40", cfg.RateLimit.Burst)
		}
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEBOARD_SERVER_PORT", "9090")
		os.Setenv("PRICEBOARD_MATCHING_MIN_SCORE_THRESHOLD", "75")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Matching.MinScoreThreshold != 75 {
			t.Errorf("Matching.MinScoreThreshold = %v, want 75", cfg.Matching.MinScoreThreshold)
		}
	})

	t.Run("rejects out-of-range matching threshold", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEBOARD_MATCHING_MIN_SCORE_THRESHOLD", "150")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("PRICEBOARD_RATELIMIT_PER_CLIENT", "0")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080", Environment: "development"},
			Matching:  MatchingConfig{MinScoreThreshold: 60},
			RateLimit: RateLimitConfig{PerClient: 20, Burst: 40},
		}
	}

	t.Run("accepts a valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects negative threshold", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.MinScoreThreshold = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})

	t.Run("rejects zero burst", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.Burst = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
