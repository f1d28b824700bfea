// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package intake

import (
	"context"
	"time"

	"github.com/lexfrei/studio-site/internal/contact"
)

// DefaultSimulatedDelay is how long a simulated submission takes.
const DefaultSimulatedDelay = 2 * time.Second

// Simulated accepts every request after a fixed delay.
type Simulated struct {
	delay time.Duration
}

// NewSimulated returns a Simulated submitter. A non-positive delay uses
// DefaultSimulatedDelay.
func NewSimulated(delay time.Duration) *Simulated {
	if delay <= 0 {
		delay = DefaultSimulatedDelay
	}

	return &Simulated{delay: delay}
}

// Submit waits for the delay or the end of ctx.
func (s *Simulated) Submit(ctx context.Context, _ contact.Request) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return contact.Timeout(ctx.Err())
	}
}
