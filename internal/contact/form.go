// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package contact

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/lexfrei/studio-site/internal/i18n"
)

// Default timings.
const (
	DefaultSubmitTimeout = 10 * time.Second
	DefaultDisplayWindow = 3 * time.Second
)

var (
	// ErrInvalid is returned by Submit when at least one field fails validation.
	ErrInvalid = errors.New("contact form has invalid fields")

	// ErrInFlight is returned by Submit while a submission is running or its
	// success message is still shown.
	ErrInFlight = errors.New("contact form submission already in progress")
)

// Phase is the lifecycle phase of a form.
type Phase string

// Form phases.
const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSubmitted  Phase = "submitted"
	PhaseFailed     Phase = "failed"
)

// Snapshot is a point-in-time copy of a form.
type Snapshot struct {
	Values  Values
	Errors  Errors
	Phase   Phase
	Failure FailureKind
}

// Submitting reports whether a submission is in flight.
func (s Snapshot) Submitting() bool {
	return s.Phase == PhaseSubmitting
}

// Submitted reports whether the success message is showing.
func (s Snapshot) Submitted() bool {
	return s.Phase == PhaseSubmitted
}

// Transition describes a phase change, passed to the observer.
type Transition struct {
	Phase   Phase
	Failure FailureKind
	Err     error
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithSubmitTimeout bounds each submission. Zero disables the bound.
func WithSubmitTimeout(d time.Duration) FormOption {
	return func(f *Form) {
		f.timeout = d
	}
}

// WithDisplayWindow sets how long the success state is kept before the
// form resets.
func WithDisplayWindow(d time.Duration) FormOption {
	return func(f *Form) {
		f.window = d
	}
}

// WithContext sets the parent context of submissions.
func WithContext(ctx context.Context) FormOption {
	return func(f *Form) {
		f.baseCtx = ctx
	}
}

// WithLanguage sets the initial request language.
func WithLanguage(lang i18n.Lang) FormOption {
	return func(f *Form) {
		f.lang = lang
	}
}

// WithSource tags requests with the page or campaign they came from.
func WithSource(source string) FormOption {
	return func(f *Form) {
		f.source = source
	}
}

// WithObserver registers a callback for phase transitions. It is called
// without the form lock held.
func WithObserver(observer func(Transition)) FormOption {
	return func(f *Form) {
		f.observer = observer
	}
}

// Form is the server-side state of one visitor's contact form.
type Form struct {
	submitter Submitter
	baseCtx   context.Context //nolint:containedctx // parent of background submissions
	timeout   time.Duration
	window    time.Duration
	source    string
	observer  func(Transition)

	mu         sync.Mutex
	lang       i18n.Lang
	values     Values
	errors     Errors
	phase      Phase
	failure    FailureKind
	generation uint64
	resetTimer *time.Timer
	closed     bool
}

// NewForm creates an empty form delivering through submitter.
func NewForm(submitter Submitter, opts ...FormOption) *Form {
	f := &Form{
		submitter: submitter,
		baseCtx:   context.Background(),
		timeout:   DefaultSubmitTimeout,
		window:    DefaultDisplayWindow,
		lang:      i18n.DefaultLang,
		values:    emptyValues(),
		errors:    Errors{},
		phase:     PhaseEditing,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// SetLanguage sets the language recorded on submitted requests.
func (f *Form) SetLanguage(lang i18n.Lang) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lang = lang
}

// OnChange stores a new value. A pending error on the field is cleared
// without re-validating.
func (f *Form) OnChange(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value

	if _, ok := f.errors[field]; ok {
		delete(f.errors, field)
	}
}

// OnBlur validates a single field. It only ever adds an error.
func (f *Form) OnBlur(field Field) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if key := ValidateField(field, f.values[field]); key != "" {
		f.errors[field] = key
	}
}

// Submit validates all fields and, when they pass, starts the submission
// in the background. The form is in the submitting phase when Submit
// returns nil.
func (f *Form) Submit() error {
	f.mu.Lock()

	if f.phase == PhaseSubmitting || f.phase == PhaseSubmitted {
		f.mu.Unlock()

		return ErrInFlight
	}

	f.errors = ValidateAll(f.values)
	if len(f.errors) > 0 {
		f.mu.Unlock()

		return ErrInvalid
	}

	f.phase = PhaseSubmitting
	f.failure = FailureNone
	f.generation++
	gen := f.generation
	req := f.request()
	f.mu.Unlock()

	f.notify(Transition{Phase: PhaseSubmitting})

	go f.deliver(gen, req)

	return nil
}

// Snapshot returns a copy of the form state.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot{
		Values:  maps.Clone(f.values),
		Errors:  maps.Clone(f.errors),
		Phase:   f.phase,
		Failure: f.failure,
	}
}

// Close stops a pending reset. Submissions still running finish but no
// longer change the form.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	f.generation++

	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *Form) request() Request {
	return Request{
		Name:     f.values[FieldName],
		Email:    f.values[FieldEmail],
		Phone:    f.values[FieldPhone],
		Message:  f.values[FieldMessage],
		Language: f.lang,
		Source:   f.source,
	}
}

func (f *Form) deliver(gen uint64, req Request) {
	ctx := f.baseCtx

	if f.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	err := f.submitter.Submit(ctx, req)

	f.mu.Lock()

	if gen != f.generation || f.closed {
		f.mu.Unlock()

		return
	}

	if err != nil {
		f.phase = PhaseFailed
		f.failure = Classify(err)
		transition := Transition{Phase: PhaseFailed, Failure: f.failure, Err: err}
		f.mu.Unlock()

		f.notify(transition)

		return
	}

	f.phase = PhaseSubmitted
	f.resetTimer = time.AfterFunc(f.window, func() { f.reset(gen) })
	f.mu.Unlock()

	f.notify(Transition{Phase: PhaseSubmitted})
}

func (f *Form) reset(gen uint64) {
	f.mu.Lock()

	if gen != f.generation || f.phase != PhaseSubmitted {
		f.mu.Unlock()

		return
	}

	f.values = emptyValues()
	f.errors = Errors{}
	f.phase = PhaseEditing
	f.resetTimer = nil
	f.mu.Unlock()

	f.notify(Transition{Phase: PhaseEditing})
}

func (f *Form) notify(t Transition) {
	if f.observer != nil {
		f.observer(t)
	}
}

func emptyValues() Values {
	values := make(Values, len(Fields()))
	for _, field := range Fields() {
		values[field] = ""
	}

	return values
}
