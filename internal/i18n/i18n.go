// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package i18n holds the site's translation tables and language negotiation.
package i18n

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang is a supported site language code.
type Lang string

// Supported languages.
const (
	LangRU Lang = "ru"
	LangKZ Lang = "kz"
	LangEN Lang = "en"

	DefaultLang = LangRU
)

// CookieName stores the visitor's language preference.
const CookieName = "studio_lang"

// supportedLangs is ordered as shown in the language switcher.
var supportedLangs = []Lang{LangRU, LangKZ, LangEN} //nolint:gochecknoglobals // immutable language list

// matcher tags are aligned with supportedLangs by index.
var matcher = language.NewMatcher([]language.Tag{ //nolint:gochecknoglobals // immutable matcher
	language.Russian,
	language.Kazakh,
	language.English,
})

// SupportedLangs returns the supported languages in switcher order.
func SupportedLangs() []Lang {
	return slices.Clone(supportedLangs)
}

// String implements fmt.Stringer.
func (l Lang) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag for the language. Kazakh is "kk" in BCP 47
// while the site uses the "kz" code in URLs and cookies.
func Tag(lang Lang) language.Tag {
	switch lang {
	case LangKZ:
		return language.Kazakh
	case LangEN:
		return language.English
	default:
		return language.Russian
	}
}

// ParseLang parses a language code. It accepts region-qualified tags
// ("ru-RU", "en_US") and the BCP 47 Kazakh code "kk".
func ParseLang(s string) (Lang, bool) {
	code := strings.ToLower(strings.TrimSpace(s))

	primary, _, _ := strings.Cut(strings.ReplaceAll(code, "_", "-"), "-")
	if primary == "kk" {
		primary = string(LangKZ)
	}

	lang := Lang(primary)
	if slices.Contains(supportedLangs, lang) {
		return lang, true
	}

	return "", false
}

// DetectLanguage determines the language from the request.
// Priority: 1) ?lang= parameter, 2) language cookie, 3) Accept-Language header, 4) default (ru).
func DetectLanguage(r *http.Request) Lang {
	if lang, ok := ParseLang(r.URL.Query().Get("lang")); ok {
		return lang
	}

	if cookie, err := r.Cookie(CookieName); err == nil {
		if lang, ok := ParseLang(cookie.Value); ok {
			return lang
		}
	}

	if acceptLang := r.Header.Get("Accept-Language"); acceptLang != "" {
		if lang, ok := parseAcceptLanguage(acceptLang); ok {
			return lang
		}
	}

	return DefaultLang
}

// parseAcceptLanguage extracts the best matching language from Accept-Language header.
func parseAcceptLanguage(header string) (Lang, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}

	return supportedLangs[index], true
}

// T returns the translation for the given key in the specified language.
// Unknown languages use the default table. Missing keys are reported by
// Validate at startup; at runtime the key itself is returned.
func T(lang Lang, key Key) string {
	translations, ok := messages[lang]
	if !ok {
		translations = messages[DefaultLang]
	}

	if msg, ok := translations[key]; ok {
		return msg
	}

	return string(key)
}

// Tf formats the translation for key with args.
func Tf(lang Lang, key Key, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Validate checks that every language table defines exactly the keys
// declared in AllKeys, with non-empty values.
func Validate() error {
	return validateTables(messages)
}

func validateTables(tables map[Lang]map[Key]string) error {
	var errs []error

	known := make(map[Key]struct{}, len(allKeys))
	for _, key := range allKeys {
		known[key] = struct{}{}
	}

	for _, lang := range supportedLangs {
		table, ok := tables[lang]
		if !ok {
			errs = append(errs, fmt.Errorf("language %q: no translation table", lang))

			continue
		}

		for _, key := range allKeys {
			if msg, ok := table[key]; !ok || strings.TrimSpace(msg) == "" {
				errs = append(errs, fmt.Errorf("language %q: missing key %q", lang, key))
			}
		}

		extra := make([]string, 0)

		for key := range table {
			if _, ok := known[key]; !ok {
				extra = append(extra, string(key))
			}
		}

		slices.Sort(extra)

		for _, key := range extra {
			errs = append(errs, fmt.Errorf("language %q: undeclared key %q", lang, key))
		}
	}

	return errors.Join(errs...)
}

// FormatNumber formats n with the language's digit grouping.
func FormatNumber(lang Lang, n int) string {
	return message.NewPrinter(Tag(lang)).Sprintf("%d", n)
}

// FormatDate renders a calendar date in the language's long form.
func FormatDate(lang Lang, t time.Time) string {
	month := T(lang, monthKeys[t.Month()-1])

	switch lang {
	case LangKZ:
		return fmt.Sprintf("%d ж. %d %s", t.Year(), t.Day(), month)
	case LangEN:
		return fmt.Sprintf("%s %d, %d", month, t.Day(), t.Year())
	default:
		return fmt.Sprintf("%d %s %d", t.Day(), month, t.Year())
	}
}

// Months returns the localized duration in months, e.g. "6 месяцев".
func Months(lang Lang, n int) string {
	return fmt.Sprintf("%d %s", n, T(lang, pluralKey(lang, n, KeyMonthOne, KeyMonthFew, KeyMonthMany)))
}

// Specialists returns the localized team size, e.g. "12 специалистов".
func Specialists(lang Lang, n int) string {
	return fmt.Sprintf("%d %s", n, T(lang, pluralKey(lang, n, KeySpecialistOne, KeySpecialistFew, KeySpecialistMany)))
}

func pluralKey(lang Lang, n int, one, few, many Key) Key {
	switch lang {
	case LangRU:
		return russianPlural(n, one, few, many)
	case LangKZ:
		// Kazakh nouns stay singular after numerals
		return one
	default:
		if n == 1 {
			return one
		}

		return many
	}
}

func russianPlural(n int, one, few, many Key) Key {
	if n < 0 {
		n = -n
	}

	lastTwo := n % 100
	lastOne := n % 10

	if lastTwo >= 11 && lastTwo <= 14 {
		return many
	}

	switch lastOne {
	case 1:
		return one
	case 2, 3, 4: //nolint:mnd // Russian pluralization rules
		return few
	default:
		return many
	}
}
