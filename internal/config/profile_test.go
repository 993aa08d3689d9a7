// internal/config/profile_test.go
//
// Unit-tests for the environment-profile lookup.
//
// The contract under test is the silent-default policy: every recognised
// name maps to its own profile, and anything else—including empty strings
// and case variants—collapses to development without an error.

package config

import "testing"

func TestForEnv_KnownProfiles(t *testing.T) {
	cases := []struct {
		env   string
		debug bool
	}{
		{EnvDevelopment, true},
		{EnvTesting, true},
		{EnvStaging, false},
		{EnvProduction, false},
	}

	for _, c := range cases {
		p := ForEnv(c.env)
		if p.Name != c.env {
			t.Fatalf("ForEnv(%q).Name = %q, want %q", c.env, p.Name, c.env)
		}
		if p.Debug != c.debug {
			t.Fatalf("ForEnv(%q).Debug = %v, want %v", c.env, p.Debug, c.debug)
		}
	}
}

func TestForEnv_UnknownFallsBackToDevelopment(t *testing.T) {
	for _, env := range []string{"", "prod", "Production", " development"} {
		p := ForEnv(env)
		if p.Name != EnvDevelopment || !p.Debug {
			t.Fatalf("ForEnv(%q) = %+v, want development default", env, p)
		}
	}
}
