package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	darkBannerColor  = lipgloss.Color("#00AFFF")
	lightBannerColor = lipgloss.Color("#005FD7")
)

// bannerStyle returns the lipgloss style matching the active theme.
func bannerStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)

	switch GetCurrentTheme().Name {
	case NoColorTheme.Name:
		return style
	case LightTheme.Name:
		return style.Bold(true).Foreground(lightBannerColor).BorderForeground(lightBannerColor)
	default:
		return style.Bold(true).Foreground(darkBannerColor).BorderForeground(darkBannerColor)
	}
}

// RenderBanner renders a title and optional subtitle lines inside a rounded
// box. The box is drawn with plain characters when colors are disabled.
//
// Parameters:
//   - title: The first line of the banner.
//   - lines: Additional lines rendered below the title.
//
// Returns:
//   - string: The rendered banner, without a trailing newline.
func RenderBanner(title string, lines ...string) string {
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, lines...)...)
	return bannerStyle().Render(body)
}
