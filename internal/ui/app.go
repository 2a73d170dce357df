package ui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/config"
	"github.com/anomredux/instant-translator/internal/coordinator"
	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/session"
	"github.com/anomredux/instant-translator/internal/translator"
	"github.com/anomredux/instant-translator/internal/ui/overlays"
)

// Focus is the control receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusSource
	FocusTarget
	FocusCount // sentinel: number of focusable controls
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
)

// BlinkMsg drives UI-only animation (250ms).
type BlinkMsg time.Time

// ConfigReloadedMsg is sent when the config file changed on disk.
type ConfigReloadedMsg struct {
	Config config.Config
	Err    error
}

type App struct {
	catalog catalog.Catalog
	state   session.State
	coord   *coordinator.Coordinator
	input   textarea.Model
	focus   Focus
	overlay OverlayType

	// Overlays
	helpOverlay     *overlays.HelpOverlay
	settingsOverlay *overlays.SettingsOverlay

	notifications *NotificationManager
	logger        *log.Logger

	Config     config.Config
	ConfigPath string

	// Animation state
	animTick uint

	// Terminal
	width  int
	height int
	ready  bool
}

// NewApp builds the model. backend is used until a config change replaces
// it; a nil logger discards output.
func NewApp(cfg config.Config, cfgPath string, backend translator.Translator, logger *log.Logger) App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cat := catalog.Default()

	state := session.New(cat)
	if s, err := state.SelectSource(cat, cfg.General.Source); err == nil {
		state = s
	}
	if s, err := state.SelectTarget(cat, cfg.General.Target); err == nil {
		state = s
	}

	input := textarea.New()
	input.Placeholder = messages.T("input_placeholder")
	input.ShowLineNumbers = false
	input.SetHeight(5)
	input.Focus()

	return App{
		catalog:       cat,
		state:         state,
		coord:         coordinator.New(backend, cfg.Debounce(), logger),
		input:         input,
		focus:         FocusInput,
		overlay:       OverlayNone,
		helpOverlay:   overlays.NewHelpOverlay(),
		notifications: NewNotificationManager(),
		logger:        logger,
		Config:        cfg,
		ConfigPath:    cfgPath,
	}
}

// State returns the current session state.
func (a App) State() session.State {
	return a.state
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(messages.T("app_title")),
		textarea.Blink,
		doBlink(),
	)
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}
