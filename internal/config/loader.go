// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from four layers (highest
precedence last):

  1. Optional `.env` file at `<root>/.env` (dotenv, never an error).
  2. Optional `conf/global.yaml` — a missing file is fine; Beacon must run
     on environment variables alone.
  3. Legacy bare variables from the original deployment contract:
     `SECRET_KEY`, `APP_ENV`, and `PORT`.
  4. Environment variables prefixed `BEACON_`, where `__` maps to “.”
     (e.g., `BEACON_HTTP__PORT → http.port`).

After merging, the tree is unmarshalled into strongly-typed structs,
defaulted, resolved to a Profile, validated, and cached in an
`atomic.Pointer` for lock-free reads.

Instrumentation
---------------
  • DEBUG spans — root discovery, YAML read, env overlay.
  • ERROR spans — YAML parse, env overlay, unmarshal, validation failures.
  • INFO  span  — final “config loaded” with key highlights (never the
    secret itself, only whether the placeholder default is in use).
  • Logs use the global *sugared* logger (`zap.S()`) so early boot issues
    surface even before the file logger is installed (bootstrap console).

Notes
-----
  • `rootDir()` climbs the cwd tree until it finds `conf/global.yaml`;
    this lets `go run ./cmd/web` work from any sub-directory.
  • Oxford commas, two spaces after periods.
*/
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Defaults for the silent-default policy.  None of them is an error to
// omit; production deployments are expected to override the secret.
const (
	DefaultPort      = 5000
	DefaultSecretKey = "dev-secret-key-change-in-production"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves BEACON_ROOT or climbs directories until conf/global.yaml
// is found.  Falls back to the working directory for env-only operation.
func rootDir() string {
	if r := os.Getenv("BEACON_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, validates, and caches Config.
func Load() (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, ".env"))

	k := koanf.New(".")

	// global.yaml (optional—env-only operation is a supported mode)
	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
			return nil, err
		}
		zap.S().Debugw("config yaml loaded", "file", yamlPath)
	}

	// Legacy bare names: SECRET_KEY, APP_ENV, PORT.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		_ = k.Set("app.secret_key", v)
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		_ = k.Set("app.env", v)
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			zap.S().Errorw("config PORT not an integer", "value", v, "err", err)
			return nil, err
		}
		_ = k.Set("http.port", p)
	}

	// Env overrides: BEACON_HTTP__PORT → http.port.  The provider only
	// filters on the prefix; the callback still sees it and must strip it.
	if err := k.Load(env.Provider("BEACON_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "BEACON_")
		return strings.ToLower(strings.ReplaceAll(s, "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	// Silent defaults, then profile resolution (unknown env → development).
	if cfg.App.SecretKey == "" {
		cfg.App.SecretKey = DefaultSecretKey
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = DefaultPort
	}
	cfg.Profile = ForEnv(cfg.App.Env)
	cfg.App.Env = cfg.Profile.Name

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"env", cfg.Profile.Name,
		"debug", cfg.Profile.Debug,
		"port", cfg.HTTP.Port,
		"default_secret", cfg.App.SecretKey == DefaultSecretKey,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

func Get() *Config { return current.Load() }
