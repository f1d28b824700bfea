// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/content"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/metrics"
	"github.com/lexfrei/studio-site/internal/navigation"
	"github.com/lexfrei/studio-site/internal/session"
)

func instantSubmitter() contact.Submitter {
	return contact.SubmitterFunc(func(context.Context, contact.Request) error {
		return nil
	})
}

func newTestServer(t *testing.T, submitter contact.Submitter, opts Options) *Server {
	t.Helper()

	catalog, err := content.LoadEmbedded()
	require.NoError(t, err)

	var m *metrics.Metrics

	store, err := session.NewStore(session.Options{
		NewNavigation: func(lang i18n.Lang) *navigation.Controller {
			return navigation.NewController(
				navigation.WithLanguage(lang),
				navigation.WithHooks(func(state navigation.State) { m.NavigationHook()(state) }),
			)
		},
		NewForm: func(lang i18n.Lang) *contact.Form {
			return contact.NewForm(submitter,
				contact.WithLanguage(lang),
				contact.WithDisplayWindow(time.Minute),
				contact.WithObserver(func(tr contact.Transition) { m.Submission(tr) }),
			)
		},
	})
	require.NoError(t, err)

	m = metrics.New(store.Len)

	if opts.RateLimit == 0 {
		opts.RateLimit = 1000
		opts.RateBurst = 1000
	}

	opts.Logger = logr.Discard()

	return NewServer(catalog, store, m, opts)
}

// browser replays cookies between requests like a real client.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, s *Server) *browser {
	t.Helper()

	return &browser{t: t, handler: s.Handler(), cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()

	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		b.cookies[cookie.Name] = cookie
	}

	return rec
}

func (b *browser) get(path string, htmx bool) *httptest.ResponseRecorder {
	b.t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	return b.do(req)
}

func (b *browser) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	b.t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	return b.do(req)
}

func validContact() url.Values {
	return url.Values{
		"name":    {"Ann Lee"},
		"email":   {"ann@example.com"},
		"phone":   {"+7 700 000 00 00"},
		"message": {"We need a warehouse team for the season."},
	}
}

func TestServer_Pages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/", i18n.T(i18n.LangRU, i18n.KeyHeroTitle)},
		{"/services", i18n.T(i18n.LangRU, i18n.KeyNavServices)},
		{"/cases", "Digital Transformation"},
		{"/cases/2", `data-case-id="2"`},
		{"/blog", "15 января 2025"},
		{"/contacts", i18n.T(i18n.LangRU, i18n.KeyContactTitle)},
		{"/no-such-page", i18n.T(i18n.LangRU, i18n.KeyHeroTitle)},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
			rec := b.get(tt.path, false)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<html")
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Contains(t, rec.Header().Values("Vary"), "HX-Request")
		})
	}
}

func TestServer_UnknownCaseFallsBackToFirst(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
	rec := b.get("/cases/99", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital Transformation")
}

func TestServer_HTMXRendersFragment(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
	rec := b.get("/services", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")
	assert.NotContains(t, rec.Body.String(), `id="main"`)
}

func TestServer_SessionKeepsSelectedCase(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	require.Equal(t, http.StatusOK, b.get("/cases/3", true).Code)
	require.Contains(t, b.cookies, session.CookieName)

	rec := b.get("/case-detail", true)
	assert.Contains(t, rec.Body.String(), `data-case-id="3"`)
}

func TestServer_LanguageSwitch(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	b.get("/cases/4", true)

	rec := b.get("/lang/en", false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, navigation.CasePath(4), rec.Header().Get("Location"))
	require.Contains(t, b.cookies, i18n.CookieName)
	assert.Equal(t, "en", b.cookies[i18n.CookieName].Value)

	page := b.get("/", false)
	assert.Contains(t, page.Body.String(), `<html lang="en">`)
	assert.Contains(t, page.Body.String(), i18n.T(i18n.LangEN, i18n.KeyHeroTitle))
}

func TestServer_LanguageSwitchKeepsFormValues(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, instantSubmitter(), Options{})
	b := newBrowser(t, s)

	b.get("/contacts", true)
	b.post("/contacts/fields/name", url.Values{"event": {"change"}, "value": {"Ann Lee"}}, true)
	b.post("/contacts/fields/email", url.Values{"event": {"change"}, "value": {"ann@example.com"}}, true)
	b.post("/contacts/fields/message", url.Values{"event": {"change"}, "value": {"Keep this text"}}, true)

	rec := b.get("/lang/kz", false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contacts", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	snap := s.sessions.Get(httptest.NewRecorder(), req, i18n.LangRU).Form.Snapshot()
	assert.Equal(t, "Ann Lee", snap.Values[contact.FieldName])
	assert.Equal(t, "ann@example.com", snap.Values[contact.FieldEmail])
	assert.Equal(t, "Keep this text", snap.Values[contact.FieldMessage])

	page := b.get("/contacts", false).Body.String()
	assert.Contains(t, page, `<html lang="kk">`)
	assert.Contains(t, page, `value="Ann Lee"`)
	assert.Contains(t, page, `value="ann@example.com"`)
	assert.Contains(t, page, `Keep this text</textarea>`)
}

func TestServer_LanguageSwitchRejectsUnknown(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
	rec := b.get("/lang/de", false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.T(i18n.LangRU, i18n.KeyErrUnknownLang))
}

func TestServer_LanguageQueryOverride(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
	rec := b.get("/?lang=kz", false)

	assert.Contains(t, rec.Body.String(), `<html lang="kk">`)
}

func TestServer_FieldValidation(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))
	emailError := i18n.T(i18n.LangRU, i18n.KeyEmailError)

	rec := b.post("/contacts/fields/email", url.Values{"event": {"change"}, "value": {"a@b"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), emailError, "typing alone does not show an error")

	rec = b.post("/contacts/fields/email", url.Values{"event": {"blur"}, "value": {"a@b"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="field-email-error"`)
	assert.Contains(t, rec.Body.String(), emailError)

	rec = b.post("/contacts/fields/email", url.Values{"event": {"change"}, "value": {"a@b.co"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), emailError)
}

func TestServer_FieldValueFromFieldName(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	rec := b.post("/contacts/fields/name", url.Values{"event": {"blur"}, "name": {"A"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.T(i18n.LangRU, i18n.KeyNameError))
}

func TestServer_FieldRejectsBadInput(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	rec := b.post("/contacts/fields/age", url.Values{"value": {"42"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.T(i18n.LangRU, i18n.KeyErrUnknownField))

	rec = b.post("/contacts/fields/name", url.Values{"event": {"focus"}, "value": {"Ann"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SubmitInvalid(t *testing.T) {
	t.Parallel()

	called := make(chan struct{}, 1)
	submitter := contact.SubmitterFunc(func(context.Context, contact.Request) error {
		called <- struct{}{}

		return nil
	})

	b := newBrowser(t, newTestServer(t, submitter, Options{}))

	form := validContact()
	form.Set("email", "not-an-email")

	rec := b.post("/contacts", form, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-phase="editing"`)
	assert.Contains(t, rec.Body.String(), i18n.T(i18n.LangRU, i18n.KeyEmailError))
	assert.Contains(t, rec.Body.String(), "Ann Lee", "entered values are kept")
	assert.Empty(t, called)
}

func TestServer_SubmitLifecycle(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	received := make(chan contact.Request, 1)

	submitter := contact.SubmitterFunc(func(ctx context.Context, req contact.Request) error {
		received <- req

		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	b := newBrowser(t, newTestServer(t, submitter, Options{}))

	rec := b.post("/contacts", validContact(), true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-phase="submitting"`)
	assert.Contains(t, rec.Body.String(), `hx-get="/contacts/status"`)

	select {
	case req := <-received:
		assert.Equal(t, "Ann Lee", req.Name)
	case <-time.After(time.Second):
		require.Fail(t, "submitter not called")
	}

	rec = b.post("/contacts", validContact(), true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(release)

	require.Eventually(t, func() bool {
		return strings.Contains(b.get("/contacts/status", true).Body.String(), `data-phase="submitted"`)
	}, time.Second, 10*time.Millisecond)

	status := b.get("/contacts/status", true)
	assert.Contains(t, status.Body.String(), i18n.T(i18n.LangRU, i18n.KeyContactSuccess))
}

func TestServer_SubmitFailureShowsKind(t *testing.T) {
	t.Parallel()

	submitter := contact.SubmitterFunc(func(context.Context, contact.Request) error {
		return contact.Rejected(errors.New("spam"))
	})

	b := newBrowser(t, newTestServer(t, submitter, Options{}))

	require.Equal(t, http.StatusAccepted, b.post("/contacts", validContact(), true).Code)

	require.Eventually(t, func() bool {
		return strings.Contains(b.get("/contacts/status", true).Body.String(), `data-failure="rejected"`)
	}, time.Second, 10*time.Millisecond)
}

func TestServer_SubmitWithoutHTMXRedirects(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	rec := b.post("/contacts", validContact(), false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contacts", rec.Header().Get("Location"))

	page := b.get("/contacts", false)
	assert.Contains(t, page.Body.String(), "<html")
	assert.Contains(t, page.Body.String(), `id="contact-panel"`)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	rec := b.get("/healthz", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	b.get("/blog", false)

	scrape := func() string {
		rec := b.get("/metrics", false)
		require.Equal(t, http.StatusOK, rec.Code)

		body, err := io.ReadAll(rec.Body)
		require.NoError(t, err)

		return string(body)
	}

	require.Eventually(t, func() bool {
		return strings.Contains(scrape(), `studio_page_views_total{lang="ru",view="blog"} 1`)
	}, time.Second, 10*time.Millisecond)

	assert.Contains(t, scrape(), "studio_sessions_active 1")
}

func TestServer_RateLimiting(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, instantSubmitter(), Options{RateLimit: 0.001, RateBurst: 1})
	handler := s.Handler()

	newRequest := func(path string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		req.Header.Set("Accept-Language", "en")

		return req
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("/"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("/services"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.T(i18n.LangEN, i18n.KeyErrRateLimit))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, newRequest("/healthz"))
	assert.Equal(t, http.StatusOK, rec.Code, "health checks are not rate limited")

	other := newRequest("/")
	other.Header.Set("X-Forwarded-For", "198.51.100.1")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limits are per client")
}

func TestServer_AssetRequestsDoNotNavigate(t *testing.T) {
	t.Parallel()

	b := newBrowser(t, newTestServer(t, instantSubmitter(), Options{}))

	b.get("/services", false)

	rec := b.get("/favicon.ico", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<html")

	rec = b.get("/apple-touch-icon.png", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = b.get("/robots.txt", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent: *")

	rec = b.get("/lang/en", false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/services", rec.Header().Get("Location"))
}

func TestServer_SweepLimiters(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, instantSubmitter(), Options{})

	first := s.getLimiter("203.0.113.7")
	s.getLimiter("198.51.100.1")

	assert.Same(t, first, s.getLimiter("203.0.113.7"), "a client keeps its limiter")
	assert.Equal(t, 0, s.SweepLimiters(time.Now(), time.Minute))

	entry, ok := s.limiters.Load("198.51.100.1")
	require.True(t, ok)
	entry.(*limiterEntry).lastSeen.Store(time.Now().Add(-time.Hour).UnixNano())

	assert.Equal(t, 1, s.SweepLimiters(time.Now(), time.Minute))

	_, ok = s.limiters.Load("198.51.100.1")
	assert.False(t, ok, "idle limiter is dropped")

	_, ok = s.limiters.Load("203.0.113.7")
	assert.True(t, ok, "active limiter is kept")
}

func TestServer_RunLimiterSweep(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, instantSubmitter(), Options{})
	s.getLimiter("203.0.113.7")

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	go s.RunLimiterSweep(ctx, 10*time.Millisecond, -time.Second)

	require.Eventually(t, func() bool {
		_, ok := s.limiters.Load("203.0.113.7")

		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestServer_GetClientIP(t *testing.T) {
	t.Parallel()

	s := &Server{}

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "192.0.2.1:1234", nil, "192.0.2.1"},
		{"remote addr without port", "192.0.2.1", nil, "192.0.2.1"},
		{"forwarded for", "10.0.0.1:1", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"real ip", "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.4"}, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, s.getClientIP(req))
		})
	}
}
