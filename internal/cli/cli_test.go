// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noldarim/bookends/internal/config"
	"github.com/noldarim/bookends/internal/content"
)

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out))
	assert.Equal(t, "bookends version 0.1.0\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"help"}, {"--help"}} {
		var out bytes.Buffer
		require.NoError(t, run(args, &out))
		assert.Contains(t, out.String(), "Usage:")
		assert.Contains(t, out.String(), "layout")
	}
}

func TestPrintLayout(t *testing.T) {
	cfg := config.ListConfig{
		Headers:      []string{"Top"},
		Footers:      []string{"Bottom", "Last"},
		ShowHeaders:  true,
		ShowFooters:  false,
		CursorMarker: "> ",
	}
	entries := []content.Entry{
		{Kind: content.KindSection, Title: "Fruit"},
		{Kind: content.KindItem, Title: "Apple"},
	}

	var out bytes.Buffer
	printLayout(&out, cfg, entries)
	table := out.String()

	for _, want := range []string{"POSITION", "REGION", "Top", "Fruit", "Apple", "Bottom", "Last", "0x1000002", "0x1000001"} {
		assert.Contains(t, table, want)
	}

	lines := strings.Split(table, "\n")
	var rows []string
	for _, line := range lines {
		if strings.Contains(line, "header") || strings.Contains(line, "delegated") || strings.Contains(line, "footer") {
			rows = append(rows, line)
		}
	}
	require.Len(t, rows, 5, "hidden footers still occupy positions")
	assert.Contains(t, rows[0], "Top")
	assert.Contains(t, rows[1], "Fruit")
	assert.Contains(t, rows[4], "Last")
}

func TestLayoutCommand_ContentFile(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(contentPath, []byte("entries:\n  - title: Only\n"), 0644))

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
log:
  output:
    - type: file
      enabled: true
      path: `+filepath.Join(dir, "bookends.log")+`
list:
  headers: [Head]
  footers: []
`), 0644))

	var out bytes.Buffer
	err := run([]string{"layout", "-config", configPath, "-content", contentPath}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Head")
	assert.Contains(t, out.String(), "Only")
	assert.NotContains(t, out.String(), "Apple")
}

func TestLayoutCommand_MissingContent(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"layout", "-config", filepath.Join(dir, "none.yaml"), "-content", filepath.Join(dir, "nope.yaml")}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load content")
}

func TestLoadEntries_Sample(t *testing.T) {
	entries, err := loadEntries("")
	require.NoError(t, err)
	assert.Equal(t, content.Sample(), entries)
}

func TestRun_BadFlagReturnsError(t *testing.T) {
	for _, command := range []string{"view", "layout"} {
		t.Run(command, func(t *testing.T) {
			var out bytes.Buffer
			err := run([]string{command, "-no-such-flag"}, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "no-such-flag")
		})
	}
}
