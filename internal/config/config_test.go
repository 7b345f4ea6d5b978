package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
server:
  host: 127.0.0.1
  port: 8080
  mode: debug
database:
  driver: sqlite
  sqlite:
    path: data/test.db
log:
  level: info
  format: text
auth:
  enabled: false
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port=%d; want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver=%q; want sqlite", cfg.Database.Driver)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__LOG__LEVEL", "warn")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port=%d; want env override 9090", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("level=%q; want warn", cfg.Log.Level)
	}
}

func TestLoad_EnvOverridePreservesSingleUnderscore(t *testing.T) {
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "42")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Pool.MaxIdleConns != 42 {
		t.Errorf("max_idle_conns=%d; want 42", cfg.Database.Pool.MaxIdleConns)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_InvalidMode(t *testing.T) {
	bad := strings.Replace(validYAML, "mode: debug", "mode: production", 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error for invalid server.mode")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	bad := strings.Replace(validYAML, "port: 8080", "port: 70000", 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_SQLitePathRequired(t *testing.T) {
	bad := strings.Replace(validYAML, "path: data/test.db", `path: "  "`, 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error for blank sqlite path")
	}
}

func TestValidate_AuthEnabledNeedsSecret(t *testing.T) {
	bad := strings.Replace(validYAML, "enabled: false", "enabled: true", 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error when auth enabled without jwt_secret")
	}
}

func TestValidate_AuthShortSecretRejected(t *testing.T) {
	bad := strings.Replace(validYAML, "enabled: false", `enabled: true
  jwt_secret: tooshort
  token_expiry: 24h
  public_paths:
    - /api/v1/auth/login
    - /api/v1/auth/register`, 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error for short jwt_secret")
	}
	if _, err := Load(writeConfig(t, strings.Replace(bad, "jwt_secret: tooshort",
		"jwt_secret: a-sufficiently-long-development-secret", 1))); err != nil {
		t.Fatalf("valid auth config rejected: %v", err)
	}
}

func TestValidate_AuthRequiresPublicAuthPaths(t *testing.T) {
	bad := strings.Replace(validYAML, "enabled: false", `enabled: true
  jwt_secret: a-sufficiently-long-development-secret
  token_expiry: 24h
  public_paths:
    - /api/v1/auth/login`, 1)
	_, err := Load(writeConfig(t, bad))
	if err == nil {
		t.Fatal("expected error when register path missing from public_paths")
	}
	if !strings.Contains(err.Error(), "/api/v1/auth/register") {
		t.Errorf("error %q should name the missing path", err)
	}
}

func TestValidate_RateLimitBounds(t *testing.T) {
	bad := strings.Replace(validYAML, "mode: debug", `mode: debug
  rate_limit:
    enabled: true
    rps: 0
    burst: 10`, 1)
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected error for non-positive rps with rate limiting enabled")
	}
}

func TestValidate_PostgresReleaseRequiresTLS(t *testing.T) {
	yaml := `
server:
  host: 10.0.0.1
  port: 8080
  mode: release
database:
  driver: postgres
  postgres:
    host: db.internal
    port: 5432
    user: app
    dbname: app
    sslmode: disable
log:
  level: info
  format: json
auth:
  enabled: false
`
	_, err := Load(writeConfig(t, yaml))
	if err == nil {
		t.Fatal("expected error for sslmode=disable in release mode")
	}
	if !strings.Contains(err.Error(), "sslmode") {
		t.Errorf("error %q should mention sslmode", err)
	}
}

func TestCountSecretClasses(t *testing.T) {
	cases := map[string]int{
		"onlylower":    1,
		"lowerUPPER":   2,
		"lower123":     2,
		"Lower123!":    4,
		"":             0,
	}
	for secret, want := range cases {
		if got := CountSecretClasses(secret); got != want {
			t.Errorf("CountSecretClasses(%q)=%d; want %d", secret, got, want)
		}
	}
}
