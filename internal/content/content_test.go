// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package content

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/studio-site/internal/i18n"
)

func loadEmbedded(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := LoadEmbedded()
	require.NoError(t, err)

	return catalog
}

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	catalog := loadEmbedded(t)

	assert.Len(t, catalog.Cases(), 6)
	assert.Len(t, catalog.Articles(), 5)
	assert.Len(t, catalog.Services(), 4)
	assert.Len(t, catalog.KPIs(), 4)

	first := catalog.Case(0)
	assert.Equal(t, "Digital Transformation", first.Title)
	assert.Equal(t, 6, first.Months)
	assert.Equal(t, 12, first.Team)
	assert.Len(t, first.Objectives, 4)
	assert.Len(t, first.Achievements, 4)
}

func TestCatalog_CaseFallsBackToFirst(t *testing.T) {
	t.Parallel()

	catalog := loadEmbedded(t)

	for _, id := range []int{-1, 6, 99} {
		assert.Equal(t, 0, catalog.Case(id).ID, "id %d", id)
	}

	assert.Equal(t, 3, catalog.Case(3).ID)
}

func TestCatalog_NextCaseWraps(t *testing.T) {
	t.Parallel()

	catalog := loadEmbedded(t)

	assert.Equal(t, 1, catalog.NextCase(0).ID)
	assert.Equal(t, 0, catalog.NextCase(5).ID)
	assert.Equal(t, 1, catalog.NextCase(42).ID, "unknown id behaves like case 0")
}

func TestCatalog_FeaturedCases(t *testing.T) {
	t.Parallel()

	catalog := loadEmbedded(t)

	assert.Len(t, catalog.FeaturedCases(3), 3)
	assert.Len(t, catalog.FeaturedCases(0), 6)
	assert.Len(t, catalog.FeaturedCases(100), 6)
}

func TestCatalog_ArticlesNewestFirst(t *testing.T) {
	t.Parallel()

	articles := loadEmbedded(t).Articles()
	require.NotEmpty(t, articles)

	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), articles[0].Date.UTC())

	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].Date.After(articles[i-1].Date))
	}
}

func TestLocalized_In(t *testing.T) {
	t.Parallel()

	text := Localized{i18n.LangRU: "Вызов", i18n.LangEN: "Challenge", i18n.LangKZ: ""}

	assert.Equal(t, "Challenge", text.In(i18n.LangEN))
	assert.Equal(t, "Вызов", text.In(i18n.LangKZ))
	assert.Equal(t, "Вызов", text.In(i18n.LangRU))
}

func TestLoad_RejectsBrokenContent(t *testing.T) {
	t.Parallel()

	services := []byte("services:\n  - key: x\n    title: no_such_key\n    description: service_digital_desc\n    full: service_digital_full\nkpis: []\n")
	articles := []byte("articles: []\n")

	tests := []struct {
		name  string
		cases string
		want  string
	}{
		{"no cases", "cases: []\n", "no cases defined"},
		{"gap in ids", "cases:\n  - id: 1\n    title: A\n", "out of sequence"},
		{"missing russian", "cases:\n  - id: 0\n    title: A\n    summary: {en: x}\n", "without ru translation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(fstest.MapFS{
				casesFile:    {Data: []byte(tt.cases)},
				articlesFile: {Data: articles},
				servicesFile: {Data: services},
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Contains(t, err.Error(), `unknown translation key "no_such_key"`)
		})
	}

	_, err := Load(fstest.MapFS{})
	require.Error(t, err)
}
