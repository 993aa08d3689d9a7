// internal/config/profile.go
//
// Environment profiles.
//
// Beacon runs under one of four named profiles.  The profile decides the
// debug flag (log verbosity, template error detail) and carries the label
// that the HTTP handlers echo back in every payload.  Lookup is a silent
// default: an unrecognised or empty name yields the development profile,
// never an error.  The match is exact—no case folding, no trimming.

package config

// Profile names.  These are the only values Profile.Name ever holds.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Profile is an immutable bundle of environment-dependent settings.
type Profile struct {
	Name  string
	Debug bool
}

var profiles = map[string]Profile{
	EnvDevelopment: {Name: EnvDevelopment, Debug: true},
	EnvTesting:     {Name: EnvTesting, Debug: true},
	EnvStaging:     {Name: EnvStaging, Debug: false},
	EnvProduction:  {Name: EnvProduction, Debug: false},
}

// ForEnv maps an environment name to its Profile.  Unknown names fall back
// to development.
func ForEnv(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles[EnvDevelopment]
}
