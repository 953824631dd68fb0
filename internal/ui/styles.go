// Package ui holds the terminal presentation layer: lipgloss styles, the
// table renderer, the spinner and the live watch model.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorSuccess = lipgloss.Color("#00D26A") // green  — healthy, listening
	ColorWarning = lipgloss.Color("#FFB800") // yellow — stale, degraded
	ColorError   = lipgloss.Color("#FF4444") // red    — down, error
	ColorHash    = lipgloss.Color("#00B4D8") // cyan   — hashes, addresses
	ColorValue   = lipgloss.Color("#FFFFFF") // white bold — numbers
	ColorMeta    = lipgloss.Color("#555555") // dim gray — metadata
	ColorBorder  = lipgloss.Color("#1E3A5F") // dark blue — UI chrome
	ColorNet     = lipgloss.Color("#9B5DE5") // purple — network names
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleHash    = lipgloss.NewStyle().Foreground(ColorHash)
	StyleValue   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)
	StyleNet     = lipgloss.NewStyle().Foreground(ColorNet).Bold(true)

	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorNet).
			Bold(true).
			Underline(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorNet).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Hash formats a hash or address.
func Hash(h string) string { return StyleHash.Render(h) }

// Val formats a value.
func Val(v string) string { return StyleValue.Render(v) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// NetName formats a network name.
func NetName(n string) string { return StyleNet.Render(n) }

// TruncateHash shortens a hash or address for display: 0x1234…5678.
func TruncateHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:8] + "…" + h[len(h)-4:]
}
