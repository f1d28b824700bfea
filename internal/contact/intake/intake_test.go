// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package intake

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
)

var sampleRequest = contact.Request{
	Name:     "Ann Lee",
	Email:    "ann@example.com",
	Phone:    "+7 700 000 00 00",
	Message:  "We need a warehouse team for the season.",
	Language: i18n.LangKZ,
	Source:   "contacts",
}

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()

	scheme := runtime.NewScheme()
	require.NoError(t, sitev1alpha1.AddToScheme(scheme))

	return scheme
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"simulated", "kubernetes", "nats"} {
		backend, err := ParseBackend(name)
		require.NoError(t, err)
		assert.Equal(t, Backend(name), backend)
	}

	_, err := ParseBackend("smtp")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNew(t *testing.T) {
	t.Parallel()

	sub, err := New(Config{Backend: BackendSimulated}, Deps{})
	require.NoError(t, err)
	assert.IsType(t, &Simulated{}, sub)

	_, err = New(Config{Backend: BackendKubernetes}, Deps{})
	require.ErrorIs(t, err, ErrMissingDependency)

	_, err = New(Config{Backend: BackendNATS}, Deps{})
	require.ErrorIs(t, err, ErrMissingDependency)

	sub, err = New(Config{Backend: BackendNATS}, Deps{NATS: &fakeRequester{}})
	require.NoError(t, err)
	assert.IsType(t, &NATS{}, sub)

	_, err = New(Config{Backend: "smtp"}, Deps{})
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestSimulated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultSimulatedDelay, NewSimulated(0).delay)

	require.NoError(t, NewSimulated(time.Millisecond).Submit(context.Background(), sampleRequest))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	err := NewSimulated(time.Hour).Submit(ctx, sampleRequest)
	assert.Equal(t, contact.FailureTimeout, contact.Classify(err))
}

func TestKubernetes_CreatesContactRequest(t *testing.T) {
	t.Parallel()

	c := fake.NewClientBuilder().WithScheme(newScheme(t)).Build()

	require.NoError(t, NewKubernetes(c, "studio").Submit(context.Background(), sampleRequest))

	list := &sitev1alpha1.ContactRequestList{}
	require.NoError(t, c.List(context.Background(), list, client.InNamespace("studio")))
	require.Len(t, list.Items, 1)

	created := list.Items[0]
	assert.Contains(t, created.Name, "contact-")
	assert.Equal(t, "Ann Lee", created.Spec.Name)
	assert.Equal(t, "ann@example.com", created.Spec.Email)
	assert.Equal(t, "kz", created.Spec.Language)
	assert.Equal(t, "contacts", created.Spec.Source)
	assert.Equal(t, "kz", created.Labels["site.k8s.lex.la/language"])
}

func TestKubernetes_ClassifiesErrors(t *testing.T) {
	t.Parallel()

	gr := schema.GroupResource{Group: sitev1alpha1.GroupVersion.Group, Resource: "contactrequests"}
	gk := schema.GroupKind{Group: sitev1alpha1.GroupVersion.Group, Kind: "ContactRequest"}

	tests := []struct {
		name string
		err  error
		want contact.FailureKind
	}{
		{"invalid", apierrors.NewInvalid(gk, "contact-x", nil), contact.FailureRejected},
		{"bad request", apierrors.NewBadRequest("bad"), contact.FailureRejected},
		{"server timeout", apierrors.NewServerTimeout(gr, "create", 1), contact.FailureTimeout},
		{"deadline", context.DeadlineExceeded, contact.FailureTimeout},
		{"forbidden", apierrors.NewForbidden(gr, "contact-x", errors.New("rbac")), contact.FailureTransport},
		{"connection", errors.New("connection refused"), contact.FailureTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := fake.NewClientBuilder().
				WithScheme(newScheme(t)).
				WithInterceptorFuncs(interceptor.Funcs{
					Create: func(context.Context, client.WithWatch, client.Object, ...client.CreateOption) error {
						return tt.err
					},
				}).
				Build()

			err := NewKubernetes(c, "").Submit(context.Background(), sampleRequest)
			require.Error(t, err)
			assert.Equal(t, tt.want, contact.Classify(err))
		})
	}
}

type fakeRequester struct {
	subject string
	body    []byte
	reply   []byte
	err     error
}

func (f *fakeRequester) RequestWithContext(_ context.Context, subj string, data []byte) (*nats.Msg, error) {
	f.subject = subj
	f.body = data

	if f.err != nil {
		return nil, f.err
	}

	return &nats.Msg{Subject: subj, Data: f.reply}, nil
}

func TestNATS_Accepted(t *testing.T) {
	t.Parallel()

	requester := &fakeRequester{reply: []byte(`{"accepted":true}`)}

	require.NoError(t, NewNATS(requester, "").Submit(context.Background(), sampleRequest))
	assert.Equal(t, DefaultSubject, requester.subject)

	var sent contact.Request
	require.NoError(t, json.Unmarshal(requester.body, &sent))
	assert.Equal(t, sampleRequest, sent)
}

func TestNATS_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requester *fakeRequester
		want      contact.FailureKind
	}{
		{"rejected", &fakeRequester{reply: []byte(`{"accepted":false,"reason":"spam"}`)}, contact.FailureRejected},
		{"timeout", &fakeRequester{err: nats.ErrTimeout}, contact.FailureTimeout},
		{"deadline", &fakeRequester{err: context.DeadlineExceeded}, contact.FailureTimeout},
		{"no responders", &fakeRequester{err: nats.ErrNoResponders}, contact.FailureTransport},
		{"closed", &fakeRequester{err: nats.ErrConnectionClosed}, contact.FailureTransport},
		{"garbage reply", &fakeRequester{reply: []byte("ok")}, contact.FailureTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewNATS(tt.requester, "custom.subject").Submit(context.Background(), sampleRequest)
			require.Error(t, err)
			assert.Equal(t, tt.want, contact.Classify(err))
			assert.Equal(t, "custom.subject", tt.requester.subject)
		})
	}
}
