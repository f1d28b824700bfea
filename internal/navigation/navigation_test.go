// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package navigation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/i18n"
)

var knownRoutes = []Route{RouteHome, RouteServices, RouteCases, RouteCaseDetail, RouteBlog, RouteContacts}

func TestNewController_Defaults(t *testing.T) {
	t.Parallel()

	state := NewController().State()

	assert.Equal(t, RouteHome, state.Route)
	assert.Equal(t, 0, state.SelectedCaseID)
	assert.Equal(t, i18n.LangRU, state.Language)
}

func TestController_NavigateReadBack(t *testing.T) {
	t.Parallel()

	c := NewController()

	for _, from := range knownRoutes {
		for _, to := range knownRoutes {
			c.Navigate(from)
			c.Navigate(to)
			assert.Equal(t, to, c.State().Route, "%s -> %s", from, to)
		}
	}
}

func TestResolve_UnknownFallsBackToHome(t *testing.T) {
	t.Parallel()

	for _, route := range []Route{"", "about", "HOME", "case_detail", "/blog"} {
		assert.Equal(t, ViewHome, Resolve(route), "route %q", route)
	}

	c := NewController()
	c.Navigate("pricing")

	assert.Equal(t, Route("pricing"), c.State().Route)
	assert.Equal(t, ViewHome, c.View())
}

func TestResolve_KnownRoutes(t *testing.T) {
	t.Parallel()

	for _, route := range knownRoutes {
		assert.Equal(t, string(route), string(Resolve(route)))
		assert.True(t, Known(route))
	}
}

func TestController_SelectCase(t *testing.T) {
	t.Parallel()

	for _, from := range knownRoutes {
		c := NewController()
		c.Navigate(from)
		c.SelectCase(4)

		state := c.State()
		assert.Equal(t, RouteCaseDetail, state.Route)
		assert.Equal(t, 4, state.SelectedCaseID)
	}
}

func TestController_CaseDetailWithoutSelectionUsesCaseZero(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.Navigate(RouteCaseDetail)

	assert.Equal(t, ViewCaseDetail, c.View())
	assert.Equal(t, 0, c.State().SelectedCaseID)
}

func TestController_SetLanguageKeepsRoute(t *testing.T) {
	t.Parallel()

	c := NewController()
	c.SelectCase(2)

	for _, lang := range i18n.SupportedLangs() {
		c.SetLanguage(lang)

		state := c.State()
		assert.Equal(t, lang, state.Language)
		assert.Equal(t, RouteCaseDetail, state.Route)
		assert.Equal(t, 2, state.SelectedCaseID)
	}
}

func TestController_HooksRunAfterNavigation(t *testing.T) {
	t.Parallel()

	got := make(chan State, 4)

	c := NewController(
		WithLanguage(i18n.LangEN),
		WithHooks(
			func(State) { panic("hook failure must not escape") },
			func(s State) { got <- s },
		),
	)

	c.Navigate(RouteBlog)

	select {
	case s := <-got:
		assert.Equal(t, RouteBlog, s.Route)
		assert.Equal(t, i18n.LangEN, s.Language)
	case <-time.After(time.Second):
		require.Fail(t, "hook did not run")
	}

	c.SetLanguage(i18n.LangKZ)

	select {
	case s := <-got:
		require.Failf(t, "unexpected hook call", "language change triggered hook with %+v", s)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestController_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := NewController()

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 0 {
				c.SelectCase(i)
			} else {
				c.Navigate(RouteContacts)
			}

			_ = c.State()
		}()
	}

	wg.Wait()

	state := c.State()
	assert.Contains(t, []Route{RouteContacts, RouteCaseDetail}, state.Route)
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		route   Route
		caseID  int
		hasCase bool
	}{
		{"/", RouteHome, 0, false},
		{"", RouteHome, 0, false},
		{"/services", RouteServices, 0, false},
		{"/cases", RouteCases, 0, false},
		{"/cases/", RouteCases, 0, false},
		{"/cases/3", RouteCaseDetail, 3, true},
		{"/cases/abc", RouteCaseDetail, 0, false},
		{"/cases/-1", RouteCaseDetail, 0, false},
		{"/case-detail", RouteCaseDetail, 0, false},
		{"/blog/", RouteBlog, 0, false},
		{"/contacts", RouteContacts, 0, false},
		{"/pricing", Route("pricing"), 0, false},
	}

	for _, tt := range tests {
		route, id, ok := ParsePath(tt.path)
		assert.Equal(t, tt.route, route, tt.path)
		assert.Equal(t, tt.caseID, id, tt.path)
		assert.Equal(t, tt.hasCase, ok, tt.path)
	}
}

func TestPathRoundTrip(t *testing.T) {
	t.Parallel()

	for _, route := range knownRoutes {
		parsed, _, _ := ParsePath(Path(route))
		assert.Equal(t, route, parsed)
	}

	parsed, id, ok := ParsePath(CasePath(5))
	assert.Equal(t, RouteCaseDetail, parsed)
	assert.Equal(t, 5, id)
	assert.True(t, ok)
}

func TestMenuItem_Active(t *testing.T) {
	t.Parallel()

	items := MenuItems()
	require.Len(t, items, 5)

	active := func(route Route) []Route {
		var out []Route

		for _, item := range items {
			if item.Active(route) {
				out = append(out, item.Route)
			}
		}

		return out
	}

	assert.Equal(t, []Route{RouteCases}, active(RouteCaseDetail))
	assert.Equal(t, []Route{RouteHome}, active("unknown"))
	assert.Equal(t, []Route{RouteBlog}, active(RouteBlog))
}
