// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// AssertQuitMessage verifies that a quit message was generated
func AssertQuitMessage(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.NotNil(t, cmd, "Expected a command to be generated")
	msg := ExecuteCommand(cmd)
	assert.IsType(t, tea.QuitMsg{}, msg, "Expected quit message")
}

// AssertNoCommand verifies that no command was generated
func AssertNoCommand(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	assert.Nil(t, cmd, "Expected no command to be generated")
}

// AssertViewContains checks that the view output contains every expected string
func AssertViewContains(t *testing.T, model tea.Model, expected ...string) {
	t.Helper()
	view := model.View()
	for _, e := range expected {
		assert.Contains(t, view, e)
	}
}

// AssertViewNotContains checks that the view output contains none of the given strings
func AssertViewNotContains(t *testing.T, model tea.Model, unexpected ...string) {
	t.Helper()
	view := model.View()
	for _, u := range unexpected {
		assert.NotContains(t, view, u)
	}
}
