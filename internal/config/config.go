// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package config loads the studio configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lexfrei/studio-site/internal/contact/intake"
)

// Prefix is prepended to every variable name.
const Prefix = "STUDIO_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the process configuration.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	RateLimit float64 `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst int     `env:"RATE_BURST" envDefault:"30"`

	SessionTTL    time.Duration `env:"SESSION_TTL"            envDefault:"30m"`
	SessionSweep  time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	MaxSessions   int           `env:"MAX_SESSIONS"           envDefault:"10000"`
	SecureCookies bool          `env:"SECURE_COOKIES"`

	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"10s"`
	SuccessWindow time.Duration `env:"SUCCESS_WINDOW" envDefault:"3s"`

	Backend        string        `env:"INTAKE_BACKEND"  envDefault:"simulated"`
	SimulatedDelay time.Duration `env:"SIMULATED_DELAY" envDefault:"2s"`
	Namespace      string        `env:"NAMESPACE"       envDefault:"default"`
	NATSURL        string        `env:"NATS_URL"        envDefault:"nats://127.0.0.1:4222"`
	NATSSubject    string        `env:"NATS_SUBJECT"    envDefault:"studio.contact.requests"`

	Retention          time.Duration `env:"CONTACT_RETENTION"      envDefault:"2160h"`
	ControllerMetrics  string        `env:"CONTROLLER_METRICS"     envDefault:":8081"`
	ControllerProbes   string        `env:"CONTROLLER_PROBES"      envDefault:":8082"`
	LeaderElection     bool          `env:"LEADER_ELECTION"`
	LeaderElectionName string        `env:"LEADER_ELECTION_ID"     envDefault:"studio-site.k8s.lex.la"`

	DevLogging bool `env:"DEV_LOGGING"`
}

// Load reads the optional dotenv files, then the process environment.
// Missing dotenv files are ignored; variables already set win.
func Load(dotenvFiles ...string) (Config, error) {
	for _, path := range dotenvFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	return parse(env.Options{Prefix: Prefix})
}

// Parse builds a Config from an explicit variable set instead of the process
// environment.
func Parse(environment map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c Config) Validate() error {
	var errs []error

	if _, err := intake.ParseBackend(c.Backend); err != nil {
		errs = append(errs, err)
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("%w: rate limit and burst must be positive", ErrInvalid))
	}

	if c.MaxSessions <= 0 {
		errs = append(errs, fmt.Errorf("%w: max sessions must be positive", ErrInvalid))
	}

	durations := map[string]time.Duration{
		"SESSION_TTL":            c.SessionTTL,
		"SESSION_SWEEP_INTERVAL": c.SessionSweep,
		"SUBMIT_TIMEOUT":         c.SubmitTimeout,
		"SUCCESS_WINDOW":         c.SuccessWindow,
		"SIMULATED_DELAY":        c.SimulatedDelay,
		"CONTACT_RETENTION":      c.Retention,
	}

	for name, d := range durations {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s%s must be positive, got %s", ErrInvalid, Prefix, name, d))
		}
	}

	return errors.Join(errs...)
}

// IntakeBackend returns the validated backend.
func (c Config) IntakeBackend() intake.Backend {
	backend, err := intake.ParseBackend(c.Backend)
	if err != nil {
		return intake.BackendSimulated
	}

	return backend
}

// Intake returns the intake backend configuration.
func (c Config) Intake() intake.Config {
	return intake.Config{
		Backend:        c.IntakeBackend(),
		SimulatedDelay: c.SimulatedDelay,
		Namespace:      c.Namespace,
		Subject:        c.NATSSubject,
	}
}
