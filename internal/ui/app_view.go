package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/session"
	"github.com/anomredux/instant-translator/internal/theme"
	"github.com/anomredux/instant-translator/internal/ui/components"
)

const (
	minWidth  = 60
	minHeight = 20
)

func (a App) View() string {
	if !a.ready {
		return messages.T("initializing")
	}

	if a.width < minWidth || a.height < minHeight {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorPeach).Render(
				messages.T("terminal_too_small")+"\n"+
					messages.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	contentHeight := max(a.height-2, 5) // status bar
	content := strings.Join([]string{
		a.renderTitle(),
		"",
		a.renderPickers(),
		"",
		a.renderInput(),
		a.renderResult(),
	}, "\n")
	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	if banner := a.notifications.RenderBanner(a.width); banner != "" {
		return content + "\n" + banner
	}
	return content + "\n" + components.StatusBar{Width: a.width, Backend: a.Config.Backend.Kind}.Render()
}

func (a App) renderTitle() string {
	return "  " + theme.AnimatedGradientText(messages.T("app_title"), a.animTick)
}

func (a App) renderPickers() string {
	langs := a.catalog.Languages()
	from := components.LanguagePicker{
		Label:     messages.T("label_from"),
		Languages: langs,
		Selected:  a.state.Source,
		Focused:   a.focus == FocusSource,
		Width:     a.width,
	}
	to := components.LanguagePicker{
		Label:     messages.T("label_to"),
		Languages: langs,
		Selected:  a.state.Target,
		Focused:   a.focus == FocusTarget,
		Width:     a.width,
	}
	return from.Render() + "\n" + to.Render()
}

func (a App) renderInput() string {
	return components.Card{
		Title:   theme.HeaderStyle.Render(messages.T("label_input")),
		Width:   a.width,
		Content: a.input.View(),
		Focused: a.focus == FocusInput,
	}.Render()
}

// renderResult follows session.Status: pending wins over a stale error.
func (a App) renderResult() string {
	card := components.Card{
		Title: theme.HeaderStyle.Render(messages.Tf("label_result", a.catalog.Name(a.state.Target))),
		Width: a.width,
	}
	inner := card.InnerWidth()

	switch a.state.Status() {
	case session.StatusFailed:
		card.Content = theme.ErrorStyle.Render(a.state.Err)
	case session.StatusPending:
		card.Content = theme.PendingStyle.Render(messages.T("translating"))
	case session.StatusResolved:
		card.Content = theme.BodyStyle.Width(inner).Render(a.state.Translated)
	}
	return card.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		if a.settingsOverlay != nil {
			return a.settingsOverlay.Render(a.width, a.height)
		}
	}
	return ""
}
