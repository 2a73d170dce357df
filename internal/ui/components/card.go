package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/theme"
)

// Card wraps content in a rounded-border box with a title in the top border.
// A focused card draws its border in the accent color.
type Card struct {
	Title   string // pre-styled
	Width   int    // total outer width
	Content string // pre-rendered content lines
	Focused bool
}

// InnerWidth returns the usable content width inside the card.
func (c Card) InnerWidth() int {
	return c.Width - 4 // 2 border chars + 2 padding spaces
}

func (c Card) Render() string {
	borderColor := theme.ColorBorder
	if c.Focused {
		borderColor = theme.ColorGold
	}
	bs := lipgloss.NewStyle().Foreground(borderColor)
	innerWidth := c.Width - 2

	// ╭─ Title ────────╮
	titlePart := ""
	if c.Title != "" {
		titlePart = " " + c.Title + " "
	}
	dashes := max(innerWidth-1-lipgloss.Width(titlePart), 0)
	top := bs.Render("╭─") + titlePart + bs.Render(strings.Repeat("─", dashes)+"╮")

	contentWidth := innerWidth - 2
	var body []string
	for _, line := range strings.Split(c.Content, "\n") {
		pad := max(contentWidth-lipgloss.Width(line), 0)
		body = append(body, bs.Render("│")+" "+line+strings.Repeat(" ", pad)+" "+bs.Render("│"))
	}

	bottom := bs.Render("╰" + strings.Repeat("─", innerWidth) + "╯")

	return top + "\n" + strings.Join(body, "\n") + "\n" + bottom
}
