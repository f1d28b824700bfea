// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package web serves the studio site.
package web

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/a-h/templ"
	"github.com/go-logr/logr"
	"golang.org/x/time/rate"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/content"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/metrics"
	"github.com/lexfrei/studio-site/internal/navigation"
	"github.com/lexfrei/studio-site/internal/session"
	"github.com/lexfrei/studio-site/internal/templates"
)

// Options tunes a Server.
type Options struct {
	RateLimit     float64
	RateBurst     int
	SecureCookies bool
	Logger        logr.Logger
}

// Server handles HTTP requests for the site.
type Server struct {
	catalog       *content.Catalog
	sessions      *session.Store
	metrics       *metrics.Metrics
	log           logr.Logger
	rateLimit     float64
	rateBurst     int
	secureCookies bool
	limiters      sync.Map
}

// limiterEntry is a per-IP limiter with the time it was last used.
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// NewServer creates a new web server.
func NewServer(catalog *content.Catalog, sessions *session.Store, m *metrics.Metrics, opts Options) *Server {
	return &Server{
		catalog:       catalog,
		sessions:      sessions,
		metrics:       m,
		log:           opts.Logger,
		rateLimit:     opts.RateLimit,
		rateBurst:     opts.RateBurst,
		secureCookies: opts.SecureCookies,
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	site := http.NewServeMux()

	site.HandleFunc("GET /", s.handlePage)
	site.HandleFunc("GET /robots.txt", handleRobots)
	site.HandleFunc("GET /favicon.ico", http.NotFound)
	site.HandleFunc("GET /services", s.handlePage)
	site.HandleFunc("GET /cases", s.handlePage)
	site.HandleFunc("GET /cases/{id}", s.handlePage)
	site.HandleFunc("GET /case-detail", s.handlePage)
	site.HandleFunc("GET /blog", s.handlePage)
	site.HandleFunc("GET /contacts", s.handlePage)
	site.HandleFunc("GET /lang/{lang}", s.handleLanguage)
	site.HandleFunc("POST /contacts/fields/{field}", s.handleField)
	site.HandleFunc("POST /contacts", s.handleSubmit)
	site.HandleFunc("GET /contacts/status", s.handleStatus)

	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", handleHealth)
	root.Handle("GET /metrics", s.metrics.Handler())
	root.Handle("/", s.rateLimitMiddleware(site))

	return root
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func handleRobots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
}

// visitor loads the session and applies an explicit ?lang= override.
func (s *Server) visitor(w http.ResponseWriter, r *http.Request) (*session.Session, i18n.Lang) {
	sess := s.sessions.Get(w, r, i18n.DetectLanguage(r))

	if lang, ok := i18n.ParseLang(r.URL.Query().Get("lang")); ok {
		sess.Navigation.SetLanguage(lang)
	}

	return sess, sess.Navigation.State().Language
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	// Asset requests must not move the visitor or count as page views.
	if path.Ext(r.URL.Path) != "" {
		http.NotFound(w, r)

		return
	}

	sess, lang := s.visitor(w, r)

	route, caseID, hasCase := navigation.ParsePath(r.URL.Path)
	if hasCase {
		sess.Navigation.SelectCase(caseID)
	} else {
		sess.Navigation.Navigate(route)
	}

	state := sess.Navigation.State()

	s.render(w, r, templates.Page{Lang: lang, Route: state.Route}, http.StatusOK, s.view(state, sess))
}

func (s *Server) view(state navigation.State, sess *session.Session) templ.Component {
	lang := state.Language

	switch state.View() {
	case navigation.ViewServices:
		return templates.Services(lang, s.catalog.Services())
	case navigation.ViewCases:
		return templates.Cases(lang, s.catalog.Cases())
	case navigation.ViewCaseDetail:
		selected := s.catalog.Case(state.SelectedCaseID)

		return templates.CaseDetail(lang, selected, s.catalog.NextCase(selected.ID))
	case navigation.ViewBlog:
		return templates.Blog(lang, s.catalog.Articles())
	case navigation.ViewContacts:
		return templates.Contacts(lang, sess.Form.Snapshot())
	default:
		return templates.Home(lang, s.catalog)
	}
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	sess, current := s.visitor(w, r)

	lang, ok := i18n.ParseLang(r.PathValue("lang"))
	if !ok {
		http.Error(w, i18n.T(current, i18n.KeyErrUnknownLang), http.StatusBadRequest)

		return
	}

	sess.Navigation.SetLanguage(lang)
	sess.Form.SetLanguage(lang)

	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, currentPath(sess.Navigation.State()), http.StatusSeeOther)
}

func currentPath(state navigation.State) string {
	if state.Route == navigation.RouteCaseDetail {
		return navigation.CasePath(state.SelectedCaseID)
	}

	return navigation.Path(state.Route)
}

func (s *Server) handleField(w http.ResponseWriter, r *http.Request) {
	sess, lang := s.visitor(w, r)

	field, ok := contact.ParseField(r.PathValue("field"))
	if !ok {
		http.Error(w, i18n.T(lang, i18n.KeyErrUnknownField), http.StatusBadRequest)

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, i18n.T(lang, i18n.KeyErrInvalidForm), http.StatusBadRequest)

		return
	}

	value := r.PostFormValue(string(field))
	if r.PostForm.Has("value") {
		value = r.PostFormValue("value")
	}

	form := sess.Form

	switch r.PostFormValue("event") {
	case "change", "":
		form.OnChange(field, value)
	case "blur":
		if form.Snapshot().Values[field] != value {
			form.OnChange(field, value)
		}

		form.OnBlur(field)

		if key := form.Snapshot().Errors[field]; key != "" {
			s.metrics.ValidationErrors(contact.Errors{field: key})
		}
	default:
		http.Error(w, i18n.T(lang, i18n.KeyErrInvalidForm), http.StatusBadRequest)

		return
	}

	s.renderFragment(w, r, lang, http.StatusOK, templates.FieldError(lang, field, form.Snapshot().Errors[field]))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, lang := s.visitor(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, i18n.T(lang, i18n.KeyErrInvalidForm), http.StatusBadRequest)

		return
	}

	form := sess.Form

	if phase := form.Snapshot().Phase; phase == contact.PhaseEditing || phase == contact.PhaseFailed {
		for _, field := range contact.Fields() {
			if r.PostForm.Has(string(field)) {
				form.OnChange(field, r.PostFormValue(string(field)))
			}
		}
	}

	form.SetLanguage(lang)
	err := form.Submit()
	snap := form.Snapshot()

	var status int

	switch {
	case errors.Is(err, contact.ErrInvalid):
		s.metrics.ValidationErrors(snap.Errors)
		status = http.StatusUnprocessableEntity
	case errors.Is(err, contact.ErrInFlight):
		status = http.StatusConflict
	default:
		s.log.V(1).Info("Contact submission started", "session", sess.ID)

		if !isHTMX(r) {
			http.Redirect(w, r, navigation.Path(navigation.RouteContacts), http.StatusSeeOther)

			return
		}

		status = http.StatusAccepted
	}

	if isHTMX(r) {
		s.renderFragment(w, r, lang, status, templates.ContactPanel(lang, snap))

		return
	}

	sess.Navigation.Navigate(navigation.RouteContacts)
	s.render(w, r, templates.Page{Lang: lang, Route: navigation.RouteContacts}, status, templates.Contacts(lang, snap))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	sess, lang := s.visitor(w, r)

	s.renderFragment(w, r, lang, http.StatusOK, templates.ContactPanel(lang, sess.Form.Snapshot()))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// render writes a full page, or only the <main> content for HTMX requests.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page templates.Page, status int, body templ.Component) {
	w.Header().Add("Vary", "HX-Request")

	if isHTMX(r) {
		s.renderFragment(w, r, page.Lang, status, body)

		return
	}

	s.renderFragment(w, r, page.Lang, status, templates.Layout(page, body))
}

func (s *Server) renderFragment(w http.ResponseWriter, r *http.Request, lang i18n.Lang, status int, c templ.Component) {
	var buf bytes.Buffer

	if err := c.Render(r.Context(), &buf); err != nil {
		s.log.Error(err, "Failed to render", "path", r.URL.Path)
		http.Error(w, i18n.T(lang, i18n.KeyErrRender), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := s.getClientIP(r)
		limiter := s.getLimiter(ip)

		if !limiter.Allow() {
			lang := i18n.DetectLanguage(r)
			http.Error(w, i18n.T(lang, i18n.KeyErrRateLimit), http.StatusTooManyRequests)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) getLimiter(ip string) *rate.Limiter {
	now := time.Now().UnixNano()

	if v, ok := s.limiters.Load(ip); ok {
		if entry, isEntry := v.(*limiterEntry); isEntry {
			entry.lastSeen.Store(now)

			return entry.limiter
		}
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(s.rateLimit), s.rateBurst)}
	entry.lastSeen.Store(now)

	actual, _ := s.limiters.LoadOrStore(ip, entry)
	if stored, ok := actual.(*limiterEntry); ok {
		stored.lastSeen.Store(now)

		return stored.limiter
	}

	return entry.limiter
}

// SweepLimiters drops the limiters of clients idle for longer than idle and
// returns how many were dropped.
func (s *Server) SweepLimiters(now time.Time, idle time.Duration) int {
	dropped := 0

	s.limiters.Range(func(key, value any) bool {
		entry, ok := value.(*limiterEntry)
		if !ok || now.Sub(time.Unix(0, entry.lastSeen.Load())) > idle {
			if s.limiters.CompareAndDelete(key, value) {
				dropped++
			}
		}

		return true
	})

	return dropped
}

// RunLimiterSweep sweeps idle limiters every interval until ctx ends.
func (s *Server) RunLimiterSweep(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if dropped := s.SweepLimiters(now, idle); dropped > 0 {
				s.log.V(1).Info("Dropped idle rate limiters", "count", dropped)
			}
		}
	}
}

func (s *Server) getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
