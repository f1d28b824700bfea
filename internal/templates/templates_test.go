// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package templates

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/content"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))

	return buf.String()
}

func catalog(t *testing.T) *content.Catalog {
	t.Helper()

	c, err := content.LoadEmbedded()
	require.NoError(t, err)

	return c
}

func TestLayout(t *testing.T) {
	t.Parallel()

	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>body</p>")

		return err
	})

	html := render(t, Layout(Page{Lang: i18n.LangKZ, Route: navigation.RouteCaseDetail}, body))

	assert.Contains(t, html, `<html lang="kk">`)
	assert.Contains(t, html, `<main id="main" hx-swap="innerHTML show:window:top"><p>body</p></main>`)
	assert.Contains(t, html, `href="/lang/en"`)
	assert.Contains(t, html, `class="active" aria-current="true">kz</a>`)
	assert.Contains(t, html, `class="menu-item active">`+i18n.T(i18n.LangKZ, i18n.KeyNavCases)+`</a>`)
	assert.Contains(t, html, i18n.T(i18n.LangKZ, i18n.KeyFooterRights))
}

func TestHome(t *testing.T) {
	t.Parallel()

	html := render(t, Home(i18n.LangEN, catalog(t)))

	assert.Contains(t, html, i18n.T(i18n.LangEN, i18n.KeyHeroTitle))
	assert.Contains(t, html, `data-count-to="300" data-suffix="+">300+</span>`)
	assert.Contains(t, html, `href="/cases/0"`)
	assert.Contains(t, html, "data-carousel")
	assert.NotContains(t, html, `href="/cases/4"`, "carousel holds the first cases only")
}

func TestCaseDetail(t *testing.T) {
	t.Parallel()

	cat := catalog(t)
	html := render(t, CaseDetail(i18n.LangRU, cat.Case(0), cat.NextCase(0)))

	assert.Contains(t, html, "Digital Transformation")
	assert.Contains(t, html, "6 месяцев")
	assert.Contains(t, html, "12 специалистов")
	assert.Contains(t, html, `href="/cases/1"`)

	en := render(t, CaseDetail(i18n.LangEN, cat.Case(1), cat.NextCase(1)))
	assert.Contains(t, en, "4 months")
	assert.Contains(t, en, "8 specialists")

	kz := render(t, CaseDetail(i18n.LangKZ, cat.Case(0), cat.NextCase(0)))
	assert.Contains(t, kz, cat.Case(0).Challenge.In(i18n.LangRU), "kz falls back to Russian narrative")
}

func TestBlog(t *testing.T) {
	t.Parallel()

	html := render(t, Blog(i18n.LangRU, catalog(t).Articles()))

	assert.Contains(t, html, "15 января 2025")
	assert.Contains(t, html, `class="article featured"`)
	assert.Contains(t, html, "5 мин чтения")
}

func TestServicesAndCases(t *testing.T) {
	t.Parallel()

	cat := catalog(t)

	services := render(t, Services(i18n.LangEN, cat.Services()))
	assert.Contains(t, services, i18n.T(i18n.LangEN, i18n.KeyItemSEO))

	cases := render(t, Cases(i18n.LangEN, cat.Cases()))
	assert.Contains(t, cases, `href="/cases/5"`)
}

func TestContactPanel_Phases(t *testing.T) {
	t.Parallel()

	editing := render(t, ContactPanel(i18n.LangEN, contact.Snapshot{
		Phase:  contact.PhaseEditing,
		Values: contact.Values{contact.FieldName: `<b>Ann</b>`},
		Errors: contact.Errors{contact.FieldEmail: i18n.KeyEmailError},
	}))
	assert.Contains(t, editing, `value="&lt;b&gt;Ann&lt;/b&gt;"`)
	assert.Contains(t, editing, i18n.T(i18n.LangEN, i18n.KeyEmailError))
	assert.Contains(t, editing, i18n.T(i18n.LangEN, i18n.KeyContactSubmit))
	assert.NotContains(t, editing, "/contacts/status")

	submitting := render(t, ContactPanel(i18n.LangEN, contact.Snapshot{Phase: contact.PhaseSubmitting}))
	assert.Contains(t, submitting, `hx-get="/contacts/status"`)
	assert.Contains(t, submitting, "disabled")
	assert.Contains(t, submitting, i18n.T(i18n.LangEN, i18n.KeyContactSubmitting))

	submitted := render(t, ContactPanel(i18n.LangEN, contact.Snapshot{Phase: contact.PhaseSubmitted}))
	assert.Contains(t, submitted, i18n.T(i18n.LangEN, i18n.KeyContactSuccess))
	assert.NotContains(t, submitted, "<form")

	failed := render(t, ContactPanel(i18n.LangEN, contact.Snapshot{
		Phase:   contact.PhaseFailed,
		Failure: contact.FailureTimeout,
		Values:  contact.Values{contact.FieldMessage: "Keep this text"},
	}))
	assert.Contains(t, failed, `data-failure="timeout"`)
	assert.Contains(t, failed, i18n.T(i18n.LangEN, i18n.KeyContactFailedTimeout))
	assert.Contains(t, failed, "Keep this text</textarea>")
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		`<p class="field-error" id="field-name-error" aria-live="polite"></p>`,
		render(t, FieldError(i18n.LangEN, contact.FieldName, "")))

	assert.Contains(t,
		render(t, FieldError(i18n.LangRU, contact.FieldPhone, i18n.KeyPhoneError)),
		i18n.T(i18n.LangRU, i18n.KeyPhoneError))
}
