// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/i18n"
)

func TestValidateField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		value string
		want  i18n.Key
	}{
		{"name two chars", FieldName, "Al", ""},
		{"name one char", FieldName, "A", i18n.KeyNameError},
		{"name padded", FieldName, "  A  ", i18n.KeyNameError},
		{"name cyrillic", FieldName, "Ян", ""},
		{"email valid", FieldEmail, "a@b.co", ""},
		{"email no tld", FieldEmail, "a@b", i18n.KeyEmailError},
		{"email empty", FieldEmail, "", i18n.KeyEmailError},
		{"email spaces", FieldEmail, "a b@c.d", i18n.KeyEmailError},
		{"email two at", FieldEmail, "a@b@c.d", i18n.KeyEmailError},
		{"phone five", FieldPhone, "12345", ""},
		{"phone four", FieldPhone, "1234", i18n.KeyPhoneError},
		{"message ten", FieldMessage, "0123456789", ""},
		{"message short", FieldMessage, "Hi", i18n.KeyMessageError},
		{"message padded", FieldMessage, "   short   ", i18n.KeyMessageError},
		{"unknown field", Field("company"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidateField(tt.field, tt.value))
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	errs := ValidateAll(Values{FieldName: "Ann", FieldEmail: "bad"})

	assert.Equal(t, Errors{
		FieldEmail:   i18n.KeyEmailError,
		FieldPhone:   i18n.KeyPhoneError,
		FieldMessage: i18n.KeyMessageError,
	}, errs)

	assert.Empty(t, ValidateAll(validValues()))
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, field := range Fields() {
		got, ok := ParseField(string(field))
		assert.True(t, ok)
		assert.Equal(t, field, got)
	}

	_, ok := ParseField("Name")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"nil", nil, FailureNone},
		{"deadline", context.DeadlineExceeded, FailureTimeout},
		{"wrapped deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), FailureTimeout},
		{"rejected", Rejected(errors.New("spam")), FailureRejected},
		{"wrapped rejected", fmt.Errorf("intake: %w", Rejected(nil)), FailureRejected},
		{"explicit timeout", Timeout(errors.New("slow")), FailureTimeout},
		{"plain", errors.New("connection refused"), FailureTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFailureKind_MessageKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.KeyContactFailedTimeout, FailureTimeout.MessageKey())
	assert.Equal(t, i18n.KeyContactFailedRejected, FailureRejected.MessageKey())
	assert.Equal(t, i18n.KeyContactFailedTransport, FailureTransport.MessageKey())
	assert.Equal(t, i18n.Key(""), FailureNone.MessageKey())
}

func TestSubmitError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := Transport(cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transport")
	assert.Equal(t, "contact submission rejected", Rejected(nil).Error())
}

func TestForm_ChangeClearsErrorWithoutRevalidating(t *testing.T) {
	t.Parallel()

	f := NewForm(okSubmitter())

	f.OnBlur(FieldName)
	assert.Equal(t, i18n.KeyNameError, f.Snapshot().Errors[FieldName])

	f.OnChange(FieldName, "A")

	_, present := f.Snapshot().Errors[FieldName]
	assert.False(t, present, "change must clear the error even for an invalid value")
}

func TestForm_BlurOnlyAddsErrors(t *testing.T) {
	t.Parallel()

	f := NewForm(okSubmitter())

	require.ErrorIs(t, f.Submit(), ErrInvalid)
	require.Contains(t, f.Snapshot().Errors, FieldEmail)

	// a valid value on blur does not clear the error set by submit
	f.mu.Lock()
	f.values[FieldEmail] = "a@b.co"
	f.mu.Unlock()

	f.OnBlur(FieldEmail)
	assert.Equal(t, i18n.KeyEmailError, f.Snapshot().Errors[FieldEmail])
}

func TestForm_SubmitInvalidDoesNotCallSubmitter(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	f := NewForm(SubmitterFunc(func(context.Context, Request) error {
		calls.Add(1)

		return nil
	}))

	fill(f, Values{
		FieldName:    "Ann Lee",
		FieldEmail:   "ann@example.com",
		FieldPhone:   "+7 700 000 00 00",
		FieldMessage: "Hi",
	})

	require.ErrorIs(t, f.Submit(), ErrInvalid)

	snap := f.Snapshot()
	assert.Equal(t, Errors{FieldMessage: i18n.KeyMessageError}, snap.Errors)
	assert.Equal(t, PhaseEditing, snap.Phase)
	assert.False(t, snap.Submitting())
	assert.Equal(t, int32(0), calls.Load())
}

func TestForm_SuccessfulSubmissionResets(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	received := make(chan Request, 1)

	var transitions []Phase

	var mu sync.Mutex

	f := NewForm(
		SubmitterFunc(func(_ context.Context, req Request) error {
			received <- req
			<-release

			return nil
		}),
		WithDisplayWindow(30*time.Millisecond),
		WithSource("contacts"),
		WithObserver(func(tr Transition) {
			mu.Lock()
			transitions = append(transitions, tr.Phase)
			mu.Unlock()
		}),
	)
	f.SetLanguage(i18n.LangEN)

	fill(f, validValues())
	require.NoError(t, f.Submit())

	snap := f.Snapshot()
	assert.True(t, snap.Submitting())
	assert.Equal(t, PhaseSubmitting, snap.Phase)

	req := <-received
	assert.Equal(t, "Ann Lee", req.Name)
	assert.Equal(t, i18n.LangEN, req.Language)
	assert.Equal(t, "contacts", req.Source)

	require.ErrorIs(t, f.Submit(), ErrInFlight)

	close(release)

	assert.Eventually(t, func() bool {
		return f.Snapshot().Submitted()
	}, time.Second, 5*time.Millisecond)

	require.ErrorIs(t, f.Submit(), ErrInFlight)

	assert.Eventually(t, func() bool {
		return f.Snapshot().Phase == PhaseEditing
	}, time.Second, 5*time.Millisecond)

	snap = f.Snapshot()
	for _, field := range Fields() {
		assert.Empty(t, snap.Values[field], field)
	}

	assert.Empty(t, snap.Errors)

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []Phase{PhaseSubmitting, PhaseSubmitted, PhaseEditing}, transitions)
}

func TestForm_FailureKeepsValuesAndAllowsRetry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	f := NewForm(
		SubmitterFunc(func(context.Context, Request) error {
			if attempts.Add(1) == 1 {
				return Rejected(errors.New("duplicate"))
			}

			return nil
		}),
		WithDisplayWindow(time.Hour),
	)
	defer f.Close()

	fill(f, validValues())
	require.NoError(t, f.Submit())

	assert.Eventually(t, func() bool {
		return f.Snapshot().Phase == PhaseFailed
	}, time.Second, 5*time.Millisecond)

	snap := f.Snapshot()
	assert.Equal(t, FailureRejected, snap.Failure)
	assert.Equal(t, "Ann Lee", snap.Values[FieldName])

	require.NoError(t, f.Submit())

	assert.Eventually(t, func() bool {
		return f.Snapshot().Submitted()
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, FailureNone, f.Snapshot().Failure)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestForm_SubmitTimeout(t *testing.T) {
	t.Parallel()

	f := NewForm(
		SubmitterFunc(func(ctx context.Context, _ Request) error {
			<-ctx.Done()

			return ctx.Err()
		}),
		WithSubmitTimeout(20*time.Millisecond),
	)

	fill(f, validValues())
	require.NoError(t, f.Submit())

	assert.Eventually(t, func() bool {
		return f.Snapshot().Failure == FailureTimeout
	}, time.Second, 5*time.Millisecond)
}

func TestForm_CloseStopsPendingReset(t *testing.T) {
	t.Parallel()

	f := NewForm(okSubmitter(), WithDisplayWindow(20*time.Millisecond))

	fill(f, validValues())
	require.NoError(t, f.Submit())

	assert.Eventually(t, func() bool {
		return f.Snapshot().Submitted()
	}, time.Second, 5*time.Millisecond)

	f.Close()
	time.Sleep(60 * time.Millisecond)

	assert.True(t, f.Snapshot().Submitted())
}

func okSubmitter() Submitter {
	return SubmitterFunc(func(context.Context, Request) error { return nil })
}

func validValues() Values {
	return Values{
		FieldName:    "Ann Lee",
		FieldEmail:   "ann@example.com",
		FieldPhone:   "+7 700 000 00 00",
		FieldMessage: "We need a warehouse team for the autumn season.",
	}
}

func fill(f *Form, values Values) {
	for field, value := range values {
		f.OnChange(field, value)
	}
}
