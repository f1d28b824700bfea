// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package contact implements the contact form: field validation, the
// submit lifecycle and the outbound submission contract.
package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lexfrei/studio-site/internal/i18n"
)

// Field names a contact form field.
type Field string

// Form fields.
const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldMessage Field = "message"
)

// Minimum trimmed lengths, in characters.
const (
	minNameLen    = 2
	minPhoneLen   = 5
	minMessageLen = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Values holds raw field input.
type Values map[Field]string

// Errors maps a failing field to its message key.
type Errors map[Field]i18n.Key

// Fields returns the form fields in display order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldPhone, FieldMessage}
}

// ParseField parses a field name.
func ParseField(s string) (Field, bool) {
	field := Field(s)

	switch field {
	case FieldName, FieldEmail, FieldPhone, FieldMessage:
		return field, true
	default:
		return "", false
	}
}

// ValidateField returns the message key for an invalid value, or an empty
// key when the value is acceptable. Unknown fields are always acceptable.
func ValidateField(field Field, value string) i18n.Key {
	switch field {
	case FieldName:
		if trimmedLen(value) < minNameLen {
			return i18n.KeyNameError
		}
	case FieldEmail:
		if !emailPattern.MatchString(value) {
			return i18n.KeyEmailError
		}
	case FieldPhone:
		if trimmedLen(value) < minPhoneLen {
			return i18n.KeyPhoneError
		}
	case FieldMessage:
		if trimmedLen(value) < minMessageLen {
			return i18n.KeyMessageError
		}
	}

	return ""
}

// ValidateAll validates every form field. Only failing fields are present
// in the result.
func ValidateAll(values Values) Errors {
	errs := Errors{}

	for _, field := range Fields() {
		if key := ValidateField(field, values[field]); key != "" {
			errs[field] = key
		}
	}

	return errs
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
