// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package session keeps per-visitor page state in memory, keyed by a cookie.
package session

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

// CookieName is the session cookie.
const CookieName = "studio_session"

// Defaults.
const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 10000
)

// Session is one visitor's state.
type Session struct {
	ID         string
	Navigation *navigation.Controller
	Form       *contact.Form

	lastSeen atomic.Int64
}

// LastSeen returns the time of the last request in the session.
func (s *Session) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// Options configures a Store.
type Options struct {
	// TTL is how long an idle session is kept.
	TTL time.Duration

	// MaxSessions bounds the store; the least recently used session is
	// dropped first.
	MaxSessions int

	// Secure marks the cookie Secure.
	Secure bool

	// NewNavigation builds the controller of a new session.
	NewNavigation func(lang i18n.Lang) *navigation.Controller

	// NewForm builds the contact form of a new session.
	NewForm func(lang i18n.Lang) *contact.Form

	// Now defaults to time.Now.
	Now func() time.Time
}

// Store holds sessions.
type Store struct {
	opts     Options
	sessions *lru.Cache[string, *Session]
}

// NewStore creates a store.
func NewStore(opts Options) (*Store, error) {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}

	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewNavigation == nil {
		opts.NewNavigation = func(lang i18n.Lang) *navigation.Controller {
			return navigation.NewController(navigation.WithLanguage(lang))
		}
	}

	if opts.NewForm == nil {
		opts.NewForm = func(lang i18n.Lang) *contact.Form {
			return contact.NewForm(contact.SubmitterFunc(func(context.Context, contact.Request) error {
				return nil
			}), contact.WithLanguage(lang))
		}
	}

	sessions, err := lru.NewWithEvict(opts.MaxSessions, func(_ string, s *Session) {
		s.Form.Close()
	})
	if err != nil {
		return nil, err
	}

	return &Store{opts: opts, sessions: sessions}, nil
}

// Get returns the session of the request, creating it and setting the
// cookie when the request has none or an unknown one. lang seeds the
// language of a new session.
func (s *Store) Get(w http.ResponseWriter, r *http.Request, lang i18n.Lang) *Session {
	now := s.opts.Now()

	if cookie, err := r.Cookie(CookieName); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			if sess, ok := s.sessions.Get(cookie.Value); ok {
				sess.touch(now)

				return sess
			}
		}
	}

	sess := &Session{
		ID:         uuid.NewString(),
		Navigation: s.opts.NewNavigation(lang),
		Form:       s.opts.NewForm(lang),
	}
	sess.touch(now)
	s.sessions.Add(sess.ID, sess)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (s *Store) Sweep(now time.Time) int {
	dropped := 0

	for _, id := range s.sessions.Keys() {
		sess, ok := s.sessions.Peek(id)
		if !ok {
			continue
		}

		if now.Sub(sess.LastSeen()) > s.opts.TTL {
			if s.sessions.Remove(id) {
				dropped++
			}
		}
	}

	return dropped
}

// Run sweeps every interval until ctx ends.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.opts.Now())
		}
	}
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
