package overlays

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/theme"
)

type HelpOverlay struct {
	AnimTick uint
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{}
}

func (h *HelpOverlay) Render(width, height int) string {
	title := theme.AnimatedGradientText(messages.T("keyboard_shortcuts"), h.AnimTick, theme.ColorCardBg)

	bindings := []struct {
		key  string
		desc string
	}{
		{"Tab / Shift+Tab", messages.T("help_focus")},
		{"Left / Right / h / l", messages.T("help_pick_language")},
		{"Ctrl+X", messages.T("help_swap")},
		{"", ""},
		{"Ctrl+O", messages.T("help_settings")},
		{"F1", messages.T("help_toggle_help")},
		{"Esc / Ctrl+C", messages.T("help_quit")},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, len(b.key))
	}

	bg := theme.ColorCardBg
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, fmt.Sprintf("  %s%s",
			keyStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, b.key)),
			descStyle.Render("  "+b.desc),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(messages.T("help_close"))

	boxWidth := 65
	if width < 69 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
