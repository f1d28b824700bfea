// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newStore(t *testing.T, opts Options) *Store {
	t.Helper()

	store, err := NewStore(opts)
	require.NoError(t, err)

	return store
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == CookieName {
			return cookie
		}
	}

	require.Fail(t, "session cookie not set")

	return nil
}

func TestStore_GetCreatesSessionWithCookie(t *testing.T) {
	t.Parallel()

	store := newStore(t, Options{Secure: true})

	rec := httptest.NewRecorder()
	sess := store.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangKZ)

	require.NotNil(t, sess)
	assert.Equal(t, i18n.LangKZ, sess.Navigation.State().Language)
	assert.Equal(t, navigation.RouteHome, sess.Navigation.State().Route)
	assert.Equal(t, contact.PhaseEditing, sess.Form.Snapshot().Phase)
	assert.Equal(t, 1, store.Len())

	cookie := sessionCookie(t, rec)
	assert.Equal(t, sess.ID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestStore_GetReusesSession(t *testing.T) {
	t.Parallel()

	store := newStore(t, Options{})

	rec := httptest.NewRecorder()
	first := store.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)
	first.Navigation.Navigate(navigation.RouteBlog)

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req.AddCookie(sessionCookie(t, rec))

	second := store.Get(httptest.NewRecorder(), req, i18n.LangEN)

	assert.Same(t, first, second)
	assert.Equal(t, navigation.RouteBlog, second.Navigation.State().Route)
	assert.Equal(t, i18n.LangRU, second.Navigation.State().Language, "language only seeds new sessions")
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetIgnoresForeignCookies(t *testing.T) {
	t.Parallel()

	store := newStore(t, Options{})

	for _, value := range []string{"not-a-uuid", "8a1f7e1c-7b0e-4a53-9c55-6a3c0f1b2d3e"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})

		rec := httptest.NewRecorder()
		sess := store.Get(rec, req, i18n.LangRU)

		assert.NotEqual(t, value, sess.ID)
		assert.Equal(t, sess.ID, sessionCookie(t, rec).Value)
	}
}

func TestStore_Sweep(t *testing.T) {
	t.Parallel()

	clk := &clock{now: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)}
	store := newStore(t, Options{TTL: time.Minute, Now: clk.Now})

	idleRec := httptest.NewRecorder()
	idle := store.Get(idleRec, httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)

	clk.Advance(45 * time.Second)

	activeRec := httptest.NewRecorder()
	store.Get(activeRec, httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)

	clk.Advance(30 * time.Second)

	assert.Equal(t, 1, store.Sweep(clk.Now()))
	assert.Equal(t, 1, store.Len())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, idleRec))

	fresh := store.Get(httptest.NewRecorder(), req, i18n.LangRU)
	assert.NotEqual(t, idle.ID, fresh.ID)
}

func TestStore_EvictionClosesForm(t *testing.T) {
	t.Parallel()

	released := make(chan struct{})

	store := newStore(t, Options{
		MaxSessions: 1,
		NewForm: func(i18n.Lang) *contact.Form {
			return contact.NewForm(
				contact.SubmitterFunc(func(context.Context, contact.Request) error { return nil }),
				contact.WithDisplayWindow(100*time.Millisecond),
				contact.WithObserver(func(tr contact.Transition) {
					if tr.Phase == contact.PhaseEditing {
						close(released)
					}
				}),
			)
		},
	})

	first := store.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)

	for field, value := range map[contact.Field]string{
		contact.FieldName:    "Ann Lee",
		contact.FieldEmail:   "ann@example.com",
		contact.FieldPhone:   "+7 700 000 00 00",
		contact.FieldMessage: "We need a warehouse team.",
	} {
		first.Form.OnChange(field, value)
	}

	require.NoError(t, first.Form.Submit())
	require.Eventually(t, func() bool {
		return first.Form.Snapshot().Submitted()
	}, time.Second, 5*time.Millisecond)

	store.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)
	assert.Equal(t, 1, store.Len())

	select {
	case <-released:
		require.Fail(t, "evicted form still reset itself")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStore_RunStopsWithContext(t *testing.T) {
	t.Parallel()

	store := newStore(t, Options{TTL: time.Nanosecond})
	store.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), i18n.LangRU)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Run did not return after cancel")
	}
}
