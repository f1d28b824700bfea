// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package navigation

import (
	"strconv"
	"strings"

	"github.com/lexfrei/studio-site/internal/i18n"
)

// Route identifies the active page.
type Route string

// Known routes.
const (
	RouteHome       Route = "home"
	RouteServices   Route = "services"
	RouteCases      Route = "cases"
	RouteCaseDetail Route = "case-detail"
	RouteBlog       Route = "blog"
	RouteContacts   Route = "contacts"
)

// View identifies the page view rendered for a route.
type View string

// Views, one per known route.
const (
	ViewHome       View = "home"
	ViewServices   View = "services"
	ViewCases      View = "cases"
	ViewCaseDetail View = "case-detail"
	ViewBlog       View = "blog"
	ViewContacts   View = "contacts"
)

const casesPrefix = "/cases/"

// MenuItem is an entry of the header and footer menus.
type MenuItem struct {
	Route Route
	Path  string
	Label i18n.Key
}

// Resolve maps a route to its view. Routes outside the known set resolve
// to the home view.
func Resolve(route Route) View {
	switch route {
	case RouteHome:
		return ViewHome
	case RouteServices:
		return ViewServices
	case RouteCases:
		return ViewCases
	case RouteCaseDetail:
		return ViewCaseDetail
	case RouteBlog:
		return ViewBlog
	case RouteContacts:
		return ViewContacts
	default:
		return ViewHome
	}
}

// Known reports whether route belongs to the known set.
func Known(route Route) bool {
	switch route {
	case RouteHome, RouteServices, RouteCases, RouteCaseDetail, RouteBlog, RouteContacts:
		return true
	default:
		return false
	}
}

// Path returns the URL path of a route. Unknown routes map to "/".
func Path(route Route) string {
	switch route {
	case RouteServices:
		return "/services"
	case RouteCases:
		return "/cases"
	case RouteCaseDetail:
		return "/case-detail"
	case RouteBlog:
		return "/blog"
	case RouteContacts:
		return "/contacts"
	default:
		return "/"
	}
}

// CasePath returns the URL of a case detail page.
func CasePath(id int) string {
	return casesPrefix + strconv.Itoa(id)
}

// ParsePath maps a URL path to a route. For "/cases/{id}" it also returns
// the case id; a non-numeric id still yields the case-detail route with the
// id left unset. Unknown paths come back as raw routes that resolve to home.
func ParsePath(path string) (Route, int, bool) {
	trimmed := strings.Trim(path, "/")

	if rest, ok := strings.CutPrefix("/"+trimmed, casesPrefix); ok {
		id, err := strconv.Atoi(rest)
		if err != nil || id < 0 {
			return RouteCaseDetail, 0, false
		}

		return RouteCaseDetail, id, true
	}

	switch trimmed {
	case "":
		return RouteHome, 0, false
	case "services":
		return RouteServices, 0, false
	case "cases":
		return RouteCases, 0, false
	case "case-detail":
		return RouteCaseDetail, 0, false
	case "blog":
		return RouteBlog, 0, false
	case "contacts":
		return RouteContacts, 0, false
	default:
		return Route(trimmed), 0, false
	}
}

// MenuItems returns the site menu in display order.
func MenuItems() []MenuItem {
	return []MenuItem{
		{Route: RouteHome, Path: Path(RouteHome), Label: i18n.KeyNavHome},
		{Route: RouteServices, Path: Path(RouteServices), Label: i18n.KeyNavServices},
		{Route: RouteCases, Path: Path(RouteCases), Label: i18n.KeyNavCases},
		{Route: RouteBlog, Path: Path(RouteBlog), Label: i18n.KeyNavBlog},
		{Route: RouteContacts, Path: Path(RouteContacts), Label: i18n.KeyNavContacts},
	}
}

// Active reports whether a menu item should be highlighted for route.
// The case detail page highlights the cases entry.
func (m MenuItem) Active(route Route) bool {
	if route == RouteCaseDetail {
		return m.Route == RouteCases
	}

	if !Known(route) {
		return m.Route == RouteHome
	}

	return m.Route == route
}
