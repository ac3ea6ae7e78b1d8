package config

import (
	"testing"
	"time"

	"github.com/chelstats/chelstats/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.StatLineBatchSize != 25 {
		t.Fatalf("unexpected StatLineBatchSize: %d", cfg.StatLineBatchSize)
	}
	if cfg.RecalcWorkers != 8 {
		t.Fatalf("unexpected RecalcWorkers: %d", cfg.RecalcWorkers)
	}
	if cfg.EAProxyMatchType != "club_private" {
		t.Fatalf("unexpected EAProxyMatchType: %q", cfg.EAProxyMatchType)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_ProdRequiresImportToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("IMPORT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without IMPORT_TOKEN")
	}
}

func TestLoad_EAProxyRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("EA_PROXY_ENABLED", "true")
	t.Setenv("EA_PROXY_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when EA_PROXY_ENABLED=true without EA_PROXY_BASE_URL")
	}
}

func TestLoad_EAProxyConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("EA_PROXY_ENABLED", "true")
	t.Setenv("EA_PROXY_BASE_URL", "https://proxy.example.com/api")
	t.Setenv("EA_PROXY_TIMEOUT", "7s")
	t.Setenv("EA_PROXY_MAX_RETRIES", "4")
	t.Setenv("EA_PROXY_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.EAProxyEnabled {
		t.Fatalf("expected EAProxyEnabled=true")
	}
	if cfg.EAProxyBaseURL != "https://proxy.example.com/api" {
		t.Fatalf("unexpected EAProxyBaseURL: %q", cfg.EAProxyBaseURL)
	}
	if cfg.EAProxyTimeout != 7*time.Second {
		t.Fatalf("unexpected EAProxyTimeout: %s", cfg.EAProxyTimeout)
	}
	if cfg.EAProxyMaxRetries != 4 {
		t.Fatalf("unexpected EAProxyMaxRetries: %d", cfg.EAProxyMaxRetries)
	}
	if cfg.EAProxyCircuitFailureCount != 3 {
		t.Fatalf("unexpected EAProxyCircuitFailureCount: %d", cfg.EAProxyCircuitFailureCount)
	}
}

func TestLoad_DiscordRequiresTokenAndChannelWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DISCORD_ENABLED", "true")
	t.Setenv("DISCORD_BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DISCORD_ENABLED=true without DISCORD_BOT_TOKEN")
	}

	t.Setenv("DISCORD_BOT_TOKEN", "token-123")
	t.Setenv("DISCORD_CHANNEL_ID", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when DISCORD_ENABLED=true without DISCORD_CHANNEL_ID")
	}
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("IMPORT_STAT_LINE_BATCH_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for IMPORT_STAT_LINE_BATCH_SIZE=0")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
