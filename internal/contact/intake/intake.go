// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package intake delivers contact requests to where the studio reads them.
package intake

import (
	"errors"
	"fmt"
	"time"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/lexfrei/studio-site/internal/contact"
)

// Backend names an intake implementation.
type Backend string

// Intake backends.
const (
	BackendSimulated  Backend = "simulated"
	BackendKubernetes Backend = "kubernetes"
	BackendNATS       Backend = "nats"
)

var (
	// ErrUnknownBackend is returned for a backend name New does not know.
	ErrUnknownBackend = errors.New("unknown intake backend")

	// ErrMissingDependency is returned when the selected backend has no client.
	ErrMissingDependency = errors.New("intake backend dependency not provided")
)

// ParseBackend parses a backend name.
func ParseBackend(s string) (Backend, error) {
	switch backend := Backend(s); backend {
	case BackendSimulated, BackendKubernetes, BackendNATS:
		return backend, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Config selects and tunes the backend.
type Config struct {
	Backend        Backend
	SimulatedDelay time.Duration
	Namespace      string
	Subject        string
}

// Deps carries the clients backends may need.
type Deps struct {
	Client client.Client
	NATS   Requester
}

// New builds the submitter for cfg.Backend.
func New(cfg Config, deps Deps) (contact.Submitter, error) {
	switch cfg.Backend {
	case BackendSimulated, "":
		return NewSimulated(cfg.SimulatedDelay), nil
	case BackendKubernetes:
		if deps.Client == nil {
			return nil, fmt.Errorf("%w: kubernetes client", ErrMissingDependency)
		}

		return NewKubernetes(deps.Client, cfg.Namespace), nil
	case BackendNATS:
		if deps.NATS == nil {
			return nil, fmt.Errorf("%w: nats connection", ErrMissingDependency)
		}

		return NewNATS(deps.NATS, cfg.Subject), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
