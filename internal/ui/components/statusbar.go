package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/theme"
)

// StatusBar renders the bottom status bar with key hints and, on the
// right, the active backend.
type StatusBar struct {
	Width   int
	Backend string
}

// Render returns the status bar: separator + key hints.
func (s StatusBar) Render() string {
	sep := theme.MutedStyle.Render(strings.Repeat("─", s.Width))
	left := s.renderKeyHints()
	right := theme.MutedStyle.Render(messages.Tf("backend_label", s.Backend) + "  ")
	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return sep + "\n" + left + strings.Repeat(" ", gap) + right
}

// One hint per palette color.
var keyColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (s StatusBar) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"F1", messages.T("status_help")},
		{"^X", messages.T("status_swap")},
		{"Tab", messages.T("status_focus")},
		{"^O", messages.T("status_settings")},
		{"Esc", messages.T("status_quit")},
	}

	var parts []string
	for i, h := range hints {
		keyStyle := lipgloss.NewStyle().Foreground(keyColors[i%len(keyColors)]).Bold(true)
		parts = append(parts, keyStyle.Render(h.key)+" "+theme.MutedStyle.Render(h.desc))
	}
	return "  " + strings.Join(parts, "  ")
}
