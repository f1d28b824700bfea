// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sitev1alpha1 "github.com/lexfrei/studio-site/api/v1alpha1"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "studio dev")
}

func TestCheckTranslationsCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "check-translations")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestNewScheme_KnowsContactRequests(t *testing.T) {
	t.Parallel()

	gvks, _, err := newScheme().ObjectKinds(&sitev1alpha1.ContactRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, gvks)
	assert.Equal(t, "ContactRequest", gvks[0].Kind)
}
