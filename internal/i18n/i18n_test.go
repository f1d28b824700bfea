// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestValidate_ShippedTables(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate())
}

func TestValidate_ReportsProblems(t *testing.T) {
	t.Parallel()

	tables := map[Lang]map[Key]string{}

	for _, lang := range supportedLangs {
		table := make(map[Key]string, len(allKeys))
		for _, key := range allKeys {
			table[key] = string(key)
		}

		tables[lang] = table
	}

	delete(tables[LangKZ], KeyNameError)
	tables[LangEN][KeyHeroTitle] = "   "
	tables[LangRU]["stray_key"] = "x"

	err := validateTables(tables)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `language "kz": missing key "nameError"`)
	assert.Contains(t, err.Error(), `language "en": missing key "hero_title"`)
	assert.Contains(t, err.Error(), `language "ru": undeclared key "stray_key"`)
}

func TestValidate_MissingLanguageTable(t *testing.T) {
	t.Parallel()

	err := validateTables(map[Lang]map[Key]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `language "ru": no translation table`)
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		cookie   string
		header   string
		expected Lang
	}{
		{"default", "", "", "", LangRU},
		{"query en", "en", "", "", LangEN},
		{"query kk alias", "kk", "", "", LangKZ},
		{"query unsupported falls through", "de", "", "", LangRU},
		{"query beats cookie", "en", "kz", "", LangEN},
		{"cookie", "", "kz", "en", LangKZ},
		{"invalid cookie falls through", "", "fr", "en-US,en;q=0.9", LangEN},
		{"accept language kazakh", "", "", "kk-KZ,ru;q=0.8", LangKZ},
		{"accept language weighted", "", "", "de;q=0.9,en;q=0.5", LangEN},
		{"accept language unsupported", "", "", "de-DE", LangRU},
		{"malformed header", "", "", ";;;", LangRU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			target := "/"
			if tt.query != "" {
				target = "/?lang=" + tt.query
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}

			assert.Equal(t, tt.expected, DetectLanguage(req))
		})
	}
}

func TestParseLang(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"ru", LangRU, true},
		{"RU-ru", LangRU, true},
		{"kz", LangKZ, true},
		{"kk_KZ", LangKZ, true},
		{" en ", LangEN, true},
		{"en-GB", LangEN, true},
		{"", "", false},
		{"zh", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLang(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestT(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Контакты", T(LangRU, KeyNavContacts))
	assert.Equal(t, "Байланыс", T(LangKZ, KeyNavContacts))
	assert.Equal(t, "Contacts", T(LangEN, KeyNavContacts))
	assert.Equal(t, "Контакты", T(Lang("xx"), KeyNavContacts), "unknown language uses the default table")
	assert.Equal(t, "no_such_key", T(LangEN, Key("no_such_key")))
}

func TestTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.Kazakh, Tag(LangKZ))
	assert.Equal(t, language.Russian, Tag(LangRU))
	assert.Equal(t, language.English, Tag(LangEN))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "15 января 2025", FormatDate(LangRU, date))
	assert.Equal(t, "2025 ж. 15 қаңтар", FormatDate(LangKZ, date))
	assert.Equal(t, "January 15, 2025", FormatDate(LangEN, date))
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "300", FormatNumber(LangRU, 300))
	assert.Equal(t, "1,500", FormatNumber(LangEN, 1500))
}

func TestMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang     Lang
		n        int
		expected string
	}{
		{LangRU, 1, "1 месяц"},
		{LangRU, 4, "4 месяца"},
		{LangRU, 6, "6 месяцев"},
		{LangRU, 11, "11 месяцев"},
		{LangRU, 21, "21 месяц"},
		{LangRU, 22, "22 месяца"},
		{LangKZ, 6, "6 ай"},
		{LangEN, 1, "1 month"},
		{LangEN, 8, "8 months"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Months(tt.lang, tt.n))
	}
}

func TestSpecialists(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12 специалистов", Specialists(LangRU, 12))
	assert.Equal(t, "2 специалиста", Specialists(LangRU, 2))
	assert.Equal(t, "12 маман", Specialists(LangKZ, 12))
	assert.Equal(t, "1 specialist", Specialists(LangEN, 1))
}

func TestSupportedLangsIsACopy(t *testing.T) {
	t.Parallel()

	langs := SupportedLangs()
	langs[0] = "xx"

	assert.Equal(t, []Lang{LangRU, LangKZ, LangEN}, SupportedLangs())
}
