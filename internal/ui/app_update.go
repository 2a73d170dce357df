package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anomredux/instant-translator/internal/config"
	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/translator"
	"github.com/anomredux/instant-translator/internal/ui/overlays"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if next, cmd, ok := a.coord.Update(a.state, msg); ok {
		a.state = next
		return a, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(max(a.width-8, 10))
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleKey(msg)

	case BlinkMsg:
		a.animTick++
		a.helpOverlay.AnimTick = a.animTick
		if a.settingsOverlay != nil {
			a.settingsOverlay.SetAnimTick(a.animTick)
		}
		a.notifications.Expire()
		return a, doBlink()

	case overlays.ConfigChangedMsg:
		if msg.SaveErr != nil {
			a.logger.Error("save config", "path", a.ConfigPath, "err", msg.SaveErr)
			a.notifications.SetError(messages.Tf("config_save_error", msg.SaveErr))
		}
		a.applyConfig(msg.Config)
		return a, nil

	case ConfigReloadedMsg:
		if msg.Err != nil {
			a.logger.Warn("reload config", "path", a.ConfigPath, "err", msg.Err)
			a.notifications.SetError(messages.Tf("config_reload_error", msg.Err))
			return a, nil
		}
		// Our own settings save comes back through the watcher.
		if msg.Config == a.Config {
			return a, nil
		}
		a.applyConfig(msg.Config)
		a.notifications.SetMessage(messages.T("config_reloaded"))
		return a, nil
	}

	if a.focus == FocusInput {
		return a.updateInput(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		a.coord.Stop()
		return a, tea.Quit
	case "f1":
		a.overlay = OverlayHelp
		return a, nil
	case "ctrl+o":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.Config, a.ConfigPath, a.catalog)
		a.settingsOverlay.SetAnimTick(a.animTick)
		a.overlay = OverlaySettings
		return a, nil
	case "ctrl+x":
		return a.swap()
	case "tab":
		return a.setFocus((a.focus + 1) % FocusCount)
	case "shift+tab":
		return a.setFocus((a.focus + FocusCount - 1) % FocusCount)
	}

	switch a.focus {
	case FocusSource, FocusTarget:
		return a.handlePickerKey(msg)
	}
	return a.updateInput(msg)
}

func (a App) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dir := 0
	switch msg.String() {
	case "left", "h", "k", "up":
		dir = -1
	case "right", "l", "j", "down", "enter", " ":
		dir = 1
	default:
		return a, nil
	}

	var err error
	if a.focus == FocusSource {
		a.state, err = a.state.SelectSource(a.catalog, a.catalog.Next(a.state.Source, dir))
	} else {
		a.state, err = a.state.SelectTarget(a.catalog, a.catalog.Next(a.state.Target, dir))
	}
	if err != nil {
		a.logger.Error("select language", "err", err)
		return a, nil
	}
	return a.trigger()
}

// updateInput forwards msg to the text area and triggers a cycle when the
// text changed.
func (a App) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() == a.state.Input {
		return a, cmd
	}
	a.state = a.state.SetInput(a.input.Value())
	next, trigger := a.trigger()
	return next, tea.Batch(cmd, trigger)
}

func (a App) swap() (tea.Model, tea.Cmd) {
	a.state = a.state.Swap()
	a.logger.Debug("swap", "source", a.state.Source, "target", a.state.Target)
	return a.trigger()
}

func (a App) trigger() (App, tea.Cmd) {
	var cmd tea.Cmd
	a.state, cmd = a.coord.Trigger(a.state)
	return a, cmd
}

func (a App) setFocus(f Focus) (tea.Model, tea.Cmd) {
	a.focus = f
	if f == FocusInput {
		return a, a.input.Focus()
	}
	a.input.Blur()
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "f1":
			a.overlay = OverlayNone
		case "ctrl+c":
			a.coord.Stop()
			return a, tea.Quit
		}
	case OverlaySettings:
		if a.settingsOverlay != nil {
			closed, cmd := a.settingsOverlay.Update(msg)
			if closed {
				a.overlay = OverlayNone
				a.settingsOverlay = nil
			}
			return a, cmd
		}
	}
	return a, nil
}

// applyConfig swaps in the debounce delay and backend of cfg. Default
// languages only apply at the next start.
func (a *App) applyConfig(cfg config.Config) {
	a.Config = cfg
	a.coord.SetDelay(cfg.Debounce())

	backend, err := translator.New(cfg.TranslatorOptions())
	if err != nil {
		a.logger.Error("build backend", "kind", cfg.Backend.Kind, "err", err)
		a.notifications.SetError(messages.Tf("backend_error", err))
		return
	}
	a.coord.SetBackend(backend)
	a.logger.Info("config applied", "backend", cfg.Backend.Kind, "debounce", cfg.Debounce())
}
