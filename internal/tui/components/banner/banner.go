// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package banner

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/noldarim/bookends/internal/bookends"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F3F4F6")).
			Background(lipgloss.Color("#7C3AED")).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			Italic(true).
			Padding(0, 1)
)

var _ bookends.View = (*Model)(nil)

// Model is a single line of styled text used as a list header or footer.
type Model struct {
	text    string
	style   lipgloss.Style
	visible bool
	width   int
}

// New creates a visible banner with a custom style
func New(text string, style lipgloss.Style) *Model {
	return &Model{text: text, style: style, visible: true}
}

// NewHeader creates a banner styled as a header
func NewHeader(text string) *Model {
	return New(text, headerStyle)
}

// NewFooter creates a banner styled as a footer
func NewFooter(text string) *Model {
	return New(text, footerStyle)
}

// SetVisible shows or hides the banner
func (m *Model) SetVisible(visible bool) {
	m.visible = visible
}

// Visible reports whether the banner is shown
func (m *Model) Visible() bool {
	return m.visible
}

// Text returns the banner text
func (m *Model) Text() string {
	return m.text
}

// SetWidth stretches the banner to width; 0 keeps its natural width
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the banner, or an empty string when hidden
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	style := m.style
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(m.text)
}
