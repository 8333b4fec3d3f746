// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, []string{"bookends"}, cfg.List.Headers)
	assert.Equal(t, []string{"end of list"}, cfg.List.Footers)
	assert.True(t, cfg.List.ShowHeaders)
	assert.True(t, cfg.List.ShowFooters)
	assert.Equal(t, "> ", cfg.List.CursorMarker)
	assert.Equal(t, time.Second, cfg.Log.Sampling.Tick)
}

func TestNewConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: json
  sampling:
    tick: 250ms
list:
  headers: [Inbox, Today]
  footers: [Load more]
  show_footers: false
  content_file: $BOOKENDS_TEST_DIR/items.yaml
  height: 12
`)
	t.Setenv("BOOKENDS_TEST_DIR", "/data")

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 250*time.Millisecond, cfg.Log.Sampling.Tick)
	assert.Equal(t, []string{"Inbox", "Today"}, cfg.List.Headers)
	assert.Equal(t, []string{"Load more"}, cfg.List.Footers)
	assert.True(t, cfg.List.ShowHeaders)
	assert.False(t, cfg.List.ShowFooters)
	assert.Equal(t, "/data/items.yaml", cfg.List.ContentFile)
	assert.Equal(t, 12, cfg.List.Height)
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "bad log level",
			body:    "log:\n  level: loud\n",
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			body:    "log:\n  format: xml\n",
			wantErr: "log.format",
		},
		{
			name:    "negative height",
			body:    "list:\n  height: -1\n",
			wantErr: "list.height",
		},
		{
			name:    "empty cursor marker",
			body:    "list:\n  cursor_marker: \"\"\n",
			wantErr: "list.cursor_marker",
		},
		{
			name:    "malformed yaml",
			body:    "list: [\n",
			wantErr: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath(""))
	assert.Equal(t, filepath.Join(home, "items.yaml"), expandPath("~/items.yaml"))
	assert.Equal(t, "/plain/path", expandPath("/plain/path"))
}
