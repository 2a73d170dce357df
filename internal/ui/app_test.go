package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/instant-translator/internal/config"
	"github.com/anomredux/instant-translator/internal/coordinator"
	"github.com/anomredux/instant-translator/internal/translator"
)

func testApp(t *testing.T) App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.General.DebounceMS = 1
	a := NewApp(cfg, t.TempDir()+"/config.toml", translator.NewMock(0), nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m.(App)
}

func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	app, ok := m.(App)
	require.True(t, ok)
	return app, cmd
}

func typeText(t *testing.T, a App, text string) (App, tea.Cmd) {
	t.Helper()
	return send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// settle runs cmd and feeds coordinator messages back until none remain.
// Other messages (cursor blinks and the like) are dropped.
func settle(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case coordinator.DebounceMsg, coordinator.ResultMsg:
			var next tea.Cmd
			a, next = send(t, a, msg)
			queue = append(queue, next)
		}
	}
	return a
}

func TestNewApp_UsesConfiguredLanguages(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.Source = "fr"
	cfg.General.Target = "de"
	a := NewApp(cfg, "", translator.NewMock(0), nil)

	assert.Equal(t, "fr", a.State().Source)
	assert.Equal(t, "de", a.State().Target)
	assert.Equal(t, FocusInput, a.focus)
}

func TestNewApp_UnknownConfiguredLanguageFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.Source = "xx"
	a := NewApp(cfg, "", translator.NewMock(0), nil)
	assert.Equal(t, "en", a.State().Source)
}

func TestApp_TypingTranslates(t *testing.T) {
	a := testApp(t)

	a, cmd := typeText(t, a, "hello")
	assert.Equal(t, "hello", a.State().Input)
	assert.True(t, a.State().Pending)
	assert.Contains(t, a.View(), "Translating...")

	a = settle(t, a, cmd)
	assert.False(t, a.State().Pending)
	assert.Equal(t, "hello → [EN→ES]", a.State().Translated)
	assert.Contains(t, a.View(), "[EN→ES]")
}

func TestApp_SwapRetranslates(t *testing.T) {
	a := testApp(t)
	a, cmd := typeText(t, a, "hola")
	a = settle(t, a, cmd)

	a, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Equal(t, "es", a.State().Source)
	assert.Equal(t, "en", a.State().Target)
	assert.Empty(t, a.State().Translated)
	assert.True(t, a.State().Pending)

	a = settle(t, a, cmd)
	assert.Equal(t, "hola → [ES→EN]", a.State().Translated)
}

func TestApp_FocusCycle(t *testing.T) {
	a := testApp(t)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusSource, a.focus)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusTarget, a.focus)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusInput, a.focus)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FocusTarget, a.focus)
}

func TestApp_PickerChangesLanguage(t *testing.T) {
	a := testApp(t)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyTab})

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "es", a.State().Source)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "it", a.State().Source, "left wraps around")

	// typing on a picker does not edit the input
	a, _ = typeText(t, a, "x")
	assert.Empty(t, a.State().Input)
}

func TestApp_SameLanguageEchoes(t *testing.T) {
	a := testApp(t)
	a, cmd := typeText(t, a, "same")
	a = settle(t, a, cmd)

	// target: es -> en
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	a, cmd = send(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "en", a.State().Target)

	a = settle(t, a, cmd)
	assert.Equal(t, "same", a.State().Translated)
}

func TestApp_HelpOverlay(t *testing.T) {
	a := testApp(t)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyF1})
	assert.Equal(t, OverlayHelp, a.overlay)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")

	a, cmd := send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, OverlayNone, a.overlay)
	assert.Nil(t, cmd, "esc closes the overlay without quitting")
}

func TestApp_SettingsOverlay(t *testing.T) {
	a := testApp(t)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, OverlaySettings, a.overlay)
	require.NotNil(t, a.settingsOverlay)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, OverlayNone, a.overlay)
	assert.Nil(t, a.settingsOverlay)
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		a := testApp(t)
		_, cmd := send(t, a, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestApp_ConfigReloaded(t *testing.T) {
	a := testApp(t)

	cfg := a.Config
	cfg.General.DebounceMS = 250
	a, _ = send(t, a, ConfigReloadedMsg{Config: cfg})
	assert.Equal(t, cfg.Debounce(), a.coord.Delay())
	assert.Contains(t, a.View(), "Config reloaded")
}

func TestApp_ConfigReloadedUnchangedIsIgnored(t *testing.T) {
	a := testApp(t)
	a, cmd := typeText(t, a, "hello")
	a = settle(t, a, cmd)
	backend := a.coord.Backend()

	a, cmd = send(t, a, ConfigReloadedMsg{Config: a.Config})
	assert.Nil(t, cmd)
	assert.Nil(t, a.notifications.Active(), "no banner for our own save")
	assert.Same(t, backend, a.coord.Backend(), "backend not rebuilt")
}

func TestApp_ResultTitleNamesTarget(t *testing.T) {
	a := testApp(t)
	assert.Contains(t, a.View(), "Translation (Spanish)")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, a.View(), "Translation (French)")
}

func TestApp_ConfigReloadError(t *testing.T) {
	a := testApp(t)
	before := a.coord.Delay()

	a, _ = send(t, a, ConfigReloadedMsg{Err: errors.New("bad toml")})
	assert.Equal(t, before, a.coord.Delay())
	require.NotNil(t, a.notifications.Active())
	assert.True(t, a.notifications.Active().IsError)
}

func TestApp_ViewTooSmall(t *testing.T) {
	a := testApp(t)
	a, _ = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, a.View(), "Terminal too small")
}

func TestApp_ViewBeforeReady(t *testing.T) {
	a := NewApp(config.DefaultConfig(), "", translator.NewMock(0), nil)
	assert.Equal(t, "Initializing...", a.View())
}
