// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package templates renders the site's HTML with templ components.
// The *_templ.go files are generated from the *.templ sources by running
// `templ generate` in the module root.
package templates

import (
	"fmt"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

// carouselSize is how many cases the home carousel shows.
const carouselSize = 4

// Poll intervals of the contact panel while it waits on the server.
const (
	pollSubmitting = "every 500ms"
	pollSubmitted  = "every 1s"
)

// Page carries what every page needs besides its own content.
type Page struct {
	Lang  i18n.Lang
	Route navigation.Route
}

var ctaFeatures = []i18n.Key{i18n.KeyCTAFeature1, i18n.KeyCTAFeature2, i18n.KeyCTAFeature3}

type fieldView struct {
	label       i18n.Key
	placeholder i18n.Key
	inputType   string
}

var fieldViews = map[contact.Field]fieldView{
	contact.FieldName:    {i18n.KeyFieldName, i18n.KeyFieldNamePlaceholder, "text"},
	contact.FieldEmail:   {i18n.KeyFieldEmail, i18n.KeyFieldEmailPlaceholder, "email"},
	contact.FieldPhone:   {i18n.KeyFieldPhone, i18n.KeyFieldPhonePlaceholder, "tel"},
	contact.FieldMessage: {i18n.KeyFieldMessage, i18n.KeyFieldMessagePlaceholder, ""},
}

// FieldErrorID is the element id of a field's error fragment.
func FieldErrorID(field contact.Field) string {
	return "field-" + string(field) + "-error"
}

func fieldID(field contact.Field) string {
	return "field-" + string(field)
}

func fieldEndpoint(field contact.Field) string {
	return "/contacts/fields/" + string(field)
}

// polls reports whether the panel refreshes itself from /contacts/status.
func polls(snap contact.Snapshot) bool {
	return snap.Submitting() || snap.Submitted()
}

func pollTrigger(snap contact.Snapshot) string {
	if snap.Submitting() {
		return pollSubmitting
	}

	return pollSubmitted
}

func submitLabel(snap contact.Snapshot) i18n.Key {
	if snap.Submitting() {
		return i18n.KeyContactSubmitting
	}

	return i18n.KeyContactSubmit
}

func readingTime(lang i18n.Lang, minutes int) string {
	return fmt.Sprintf("%d %s", minutes, i18n.T(lang, i18n.KeyBlogMinRead))
}
