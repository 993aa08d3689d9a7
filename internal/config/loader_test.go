// internal/config/loader_test.go
//
// Unit-tests for the layered configuration loader.
//
// Context
// -------
// Each test pins BEACON_ROOT to a throwaway directory so the climb in
// rootDir() can never pick up a developer's real conf/global.yaml, then
// exercises one precedence rule:
//
//   • no input at all            → silent defaults (port 5000, development)
//   • bare legacy names          → honoured (SECRET_KEY, APP_ENV, PORT)
//   • BEACON_-prefixed override  → beats the bare name
//   • yaml layer                 → loaded, and beaten by env
//   • malformed PORT             → load error, not a panic

package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable the loader consults.  t.Setenv also
// registers the restore, so tests stay hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BEACON_ROOT", t.TempDir())
	for _, k := range []string{
		"SECRET_KEY", "APP_ENV", "PORT",
		"BEACON_APP__ENV", "BEACON_APP__SECRET_KEY", "BEACON_HTTP__PORT",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != DefaultPort {
		t.Fatalf("port = %d, want %d", cfg.HTTP.Port, DefaultPort)
	}
	if cfg.Profile.Name != EnvDevelopment || !cfg.Profile.Debug {
		t.Fatalf("profile = %+v, want development default", cfg.Profile)
	}
	if cfg.App.SecretKey != DefaultSecretKey {
		t.Fatalf("secret not defaulted")
	}
	if got := cfg.ListenAddr(); got != ":5000" {
		t.Fatalf("ListenAddr = %q, want :5000", got)
	}
	if Get() != cfg {
		t.Fatalf("Get() did not return the cached aggregate")
	}
}

func TestLoad_BareLegacyNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.SecretKey != "s3cret" {
		t.Fatalf("secret = %q", cfg.App.SecretKey)
	}
	if cfg.Profile.Name != EnvTesting || !cfg.Profile.Debug {
		t.Fatalf("profile = %+v, want testing (debug)", cfg.Profile)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.HTTP.Port)
	}
}

func TestLoad_PrefixedOverrideWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("BEACON_HTTP__PORT", "9090")
	t.Setenv("BEACON_APP__ENV", "staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Fatalf("port = %d, want BEACON_ override 9090", cfg.HTTP.Port)
	}
	if cfg.Profile.Name != EnvStaging {
		t.Fatalf("profile = %q, want BEACON_ override staging", cfg.Profile.Name)
	}
}

func TestLoad_YamlLayer(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	t.Setenv("BEACON_ROOT", root)
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "app:\n  env: staging\nhttp:\n  port: 7000\n"
	if err := os.WriteFile(filepath.Join(root, "conf", "global.yaml"),
		[]byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Profile.Name != EnvStaging || cfg.Profile.Debug {
		t.Fatalf("profile = %+v, want staging (no debug)", cfg.Profile)
	}
	if cfg.HTTP.Port != 7000 {
		t.Fatalf("port = %d, want yaml 7000", cfg.HTTP.Port)
	}

	// Bare legacy name outranks the file.
	t.Setenv("PORT", "7100")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load (env over yaml): %v", err)
	}
	if cfg.HTTP.Port != 7100 {
		t.Fatalf("port = %d, want env 7100 over yaml", cfg.HTTP.Port)
	}
}

func TestLoad_MalformedPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatalf("Load accepted a non-integer PORT")
	}
}
