// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/lexfrei/studio-site/internal/i18n"
)

// Request is the payload handed to the intake collaborator.
type Request struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Message  string    `json:"message"`
	Language i18n.Lang `json:"language"`
	Source   string    `json:"source,omitempty"`
}

// Submitter delivers a contact request to the intake endpoint.
type Submitter interface {
	Submit(ctx context.Context, req Request) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req Request) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, req Request) error {
	return f(ctx, req)
}

// FailureKind classifies a failed submission.
type FailureKind string

// Failure kinds.
const (
	FailureNone      FailureKind = ""
	FailureTimeout   FailureKind = "timeout"
	FailureRejected  FailureKind = "rejected"
	FailureTransport FailureKind = "transport"
)

// MessageKey returns the user-visible message for the failure.
func (k FailureKind) MessageKey() i18n.Key {
	switch k {
	case FailureTimeout:
		return i18n.KeyContactFailedTimeout
	case FailureRejected:
		return i18n.KeyContactFailedRejected
	case FailureNone:
		return ""
	default:
		return i18n.KeyContactFailedTransport
	}
}

// SubmitError is returned by submitters that know why a submission failed.
type SubmitError struct {
	Kind FailureKind
	Err  error
}

func (e *SubmitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("contact submission %s", e.Kind)
	}

	return fmt.Sprintf("contact submission %s: %v", e.Kind, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Timeout wraps err as a timeout failure.
func Timeout(err error) error {
	return &SubmitError{Kind: FailureTimeout, Err: err}
}

// Rejected wraps err as a rejection by the intake endpoint.
func Rejected(err error) error {
	return &SubmitError{Kind: FailureRejected, Err: err}
}

// Transport wraps err as a delivery failure.
func Transport(err error) error {
	return &SubmitError{Kind: FailureTransport, Err: err}
}

// Classify returns the failure kind of err. Context deadlines count as
// timeouts; errors without a kind count as transport failures.
func Classify(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var submitErr *SubmitError
	if errors.As(err, &submitErr) && submitErr.Kind != FailureNone {
		return submitErr.Kind
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	return FailureTransport
}
