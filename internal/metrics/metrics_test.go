// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/contact"
	"github.com/lexfrei/studio-site/internal/i18n"
	"github.com/lexfrei/studio-site/internal/navigation"
)

func TestMetrics_PageViewsThroughHook(t *testing.T) {
	t.Parallel()

	m := New(nil)
	c := navigation.NewController(navigation.WithLanguage(i18n.LangEN), navigation.WithHooks(m.NavigationHook()))

	c.Navigate(navigation.RouteBlog)
	c.Navigate("pricing")

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.pageViews.WithLabelValues("blog", "en")) == 1 &&
			testutil.ToFloat64(m.pageViews.WithLabelValues("home", "en")) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestMetrics_ValidationErrors(t *testing.T) {
	t.Parallel()

	m := New(nil)
	m.ValidationErrors(contact.ValidateAll(contact.Values{contact.FieldName: "Ann"}))

	assert.InDelta(t, 0, testutil.ToFloat64(m.validationErrors.WithLabelValues("name")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.validationErrors.WithLabelValues("email")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.validationErrors.WithLabelValues("message")), 0)
}

func TestMetrics_Submission(t *testing.T) {
	t.Parallel()

	m := New(nil)

	for _, tr := range []contact.Transition{
		{Phase: contact.PhaseSubmitting},
		{Phase: contact.PhaseSubmitted},
		{Phase: contact.PhaseEditing},
		{Phase: contact.PhaseSubmitting},
		{Phase: contact.PhaseFailed, Failure: contact.FailureTimeout},
	} {
		m.Submission(tr)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeSucceeded)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues("timeout")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New(func() int { return 3 })
	m.PageView(navigation.ViewContacts, i18n.LangKZ)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `studio_page_views_total{lang="kz",view="contacts"} 1`)
	assert.Contains(t, body, "studio_sessions_active 3")

	count, err := testutil.GatherAndCount(m.Registry(), "studio_sessions_active")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, body, "go_goroutines")
}
