// internal/config/model.go
//
// Typed configuration model for Beacon.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from four overlay layers:
//
//   • optional `.env`                          – dotenv values,
//   • optional `conf/global.yaml`              – static file,
//   • legacy bare variables                    – SECRET_KEY, APP_ENV, PORT,
//   • `BEACON_`-prefixed environment overrides – highest precedence.
//
// The aggregate is immutable after Load(); request handlers only ever read
// it.  The resolved Profile is attached at load time and is never set from
// YAML or env directly—it is derived from `app.env` through ForEnv.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "strconv"

//
// App section
//

// App holds application-level settings.  SecretKey is never logged; the
// loader only reports whether the placeholder default is still in use.
type App struct {
	Env       string `koanf:"env"`
	SecretKey string `koanf:"secret_key" validate:"required"`
}

//
// HTTP section
//

// HTTP holds web-server tunables.  The process binds all interfaces on
// Port, matching the original deployment contract.
type HTTP struct {
	Port int `koanf:"port" validate:"required,min=1,max=65535"`
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	App     App     `koanf:"app"`
	HTTP    HTTP    `koanf:"http"`
	Profile Profile `koanf:"-"` // resolved from App.Env, never unmarshalled
}

// ListenAddr renders the bind address for the HTTP listener.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.HTTP.Port)
}
