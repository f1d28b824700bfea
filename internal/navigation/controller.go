// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package navigation holds the per-visitor page state: the active route,
// the selected case and the active language.
package navigation

import (
	"sync"

	"github.com/lexfrei/studio-site/internal/i18n"
)

// State is a snapshot of a visitor's navigation state.
type State struct {
	Route          Route
	SelectedCaseID int
	Language       i18n.Lang
}

// View returns the view rendered for the state's route.
func (s State) View() View {
	return Resolve(s.Route)
}

// Hook runs after a navigation. Hooks are best-effort: they run on their
// own goroutine, their panics are swallowed and nothing waits for them.
type Hook func(State)

// Option configures a Controller.
type Option func(*Controller)

// WithLanguage sets the initial language.
func WithLanguage(lang i18n.Lang) Option {
	return func(c *Controller) {
		c.state.Language = lang
	}
}

// WithHooks registers post-navigation hooks.
func WithHooks(hooks ...Hook) Option {
	return func(c *Controller) {
		c.hooks = append(c.hooks, hooks...)
	}
}

// Controller owns one visitor's navigation state.
type Controller struct {
	mu    sync.RWMutex
	state State
	hooks []Hook
}

// NewController creates a controller at the home route, case 0, default language.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: State{
			Route:          RouteHome,
			SelectedCaseID: 0,
			Language:       i18n.DefaultLang,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Navigate sets the current route. The route is stored as given; unknown
// routes render the home view.
func (c *Controller) Navigate(route Route) {
	c.mu.Lock()
	c.state.Route = route
	snapshot := c.state
	c.mu.Unlock()

	c.afterNavigate(snapshot)
}

// SelectCase selects a case and moves to the case detail route in one step.
func (c *Controller) SelectCase(id int) {
	c.mu.Lock()
	c.state.SelectedCaseID = id
	c.state.Route = RouteCaseDetail
	snapshot := c.state
	c.mu.Unlock()

	c.afterNavigate(snapshot)
}

// SetLanguage replaces the active language. The route is left untouched.
func (c *Controller) SetLanguage(lang i18n.Lang) {
	c.mu.Lock()
	c.state.Language = lang
	c.mu.Unlock()
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// View returns the view for the current route.
func (c *Controller) View() View {
	return c.State().View()
}

func (c *Controller) afterNavigate(state State) {
	for _, hook := range c.hooks {
		go runHook(hook, state)
	}
}

func runHook(hook Hook, state State) {
	defer func() {
		_ = recover()
	}()

	hook(state)
}
