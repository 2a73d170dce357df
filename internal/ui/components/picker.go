package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/theme"
)

// LanguagePicker renders one row of languages with the selected one
// highlighted, like a tab bar.
type LanguagePicker struct {
	Label     string
	Languages []catalog.Language
	Selected  string
	Focused   bool
	Width     int
}

var (
	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(theme.ColorGold).
				Background(theme.ColorElevatedBg).
				Bold(true).
				Padding(0, 1)

	pickerIdleStyle = lipgloss.NewStyle().
			Foreground(theme.ColorMutedText).
			Padding(0, 1)

	pickerLabelStyle = lipgloss.NewStyle().
				Foreground(theme.ColorBodyText).
				Width(8)
)

func (p LanguagePicker) Render() string {
	arrow := "  "
	label := pickerLabelStyle.Render(p.Label)
	if p.Focused {
		arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Render("> ")
		label = pickerLabelStyle.Foreground(theme.ColorGold).Bold(true).Render(p.Label)
	}

	var items []string
	for _, l := range p.Languages {
		if l.Code == p.Selected {
			items = append(items, pickerSelectedStyle.Render(l.Name))
		} else {
			items = append(items, pickerIdleStyle.Render(l.Name))
		}
	}

	return lipgloss.NewStyle().
		MaxWidth(p.Width).
		Render(arrow + label + strings.Join(items, ""))
}
