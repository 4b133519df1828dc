// Package styles provides colour themes and styling for CLI output.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/servicehub/internal/core/domain"
)

// Theme defines the colour palette for CLI output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Error:     lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles renders CLI text. When disabled every method returns its input
// unchanged, so output written to files and pipes stays plain.
type Styles struct {
	enabled bool

	title   lipgloss.Style
	muted   lipgloss.Style
	price   lipgloss.Style
	errText lipgloss.Style
	status  map[domain.ServiceStatus]lipgloss.Style
}

// New creates styles from a theme.
func New(theme *Theme, enabled bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		enabled: enabled,
		title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		price:   lipgloss.NewStyle().Foreground(theme.Secondary),
		errText: lipgloss.NewStyle().Foreground(theme.Error),
		status: map[domain.ServiceStatus]lipgloss.Style{
			domain.StatusPending:    lipgloss.NewStyle().Foreground(theme.Warning),
			domain.StatusInProgress: lipgloss.NewStyle().Foreground(theme.Secondary),
			domain.StatusCompleted:  lipgloss.NewStyle().Bold(true).Foreground(theme.Success),
		},
	}
}

// Plain returns styles that never add escape sequences.
func Plain() *Styles {
	return New(nil, false)
}

// Enabled reports whether styling is applied.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Title styles a heading.
func (s *Styles) Title(text string) string {
	return s.render(s.title, text)
}

// Muted styles secondary text.
func (s *Styles) Muted(text string) string {
	return s.render(s.muted, text)
}

// Price styles a formatted price.
func (s *Styles) Price(text string) string {
	return s.render(s.price, text)
}

// Error styles an error message.
func (s *Styles) Error(text string) string {
	return s.render(s.errText, text)
}

// Status styles a service status with its lifecycle colour.
func (s *Styles) Status(status domain.ServiceStatus) string {
	st, ok := s.status[status]
	if !ok {
		return status.String()
	}
	return s.render(st, status.String())
}

// Pad right-pads text to width visible cells. Escape sequences added by
// styling do not count towards the width.
func Pad(text string, width int) string {
	if gap := width - lipgloss.Width(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

func (s *Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}
