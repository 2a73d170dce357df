package overlays

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/config"
	"github.com/anomredux/instant-translator/internal/messages"
	"github.com/anomredux/instant-translator/internal/theme"
	"github.com/anomredux/instant-translator/internal/translator"
)

// ConfigChangedMsg signals that the settings overlay updated the config.
// SaveErr is set when writing it to disk failed; Config still applies.
type ConfigChangedMsg struct {
	Config  config.Config
	SaveErr error
}

type settingsField struct {
	label   string
	key     string
	options []string
	value   string
}

type SettingsOverlay struct {
	cfg      config.Config
	cfgPath  string
	fields   []settingsField
	cursor   int
	dirty    bool
	animTick uint
}

// DebounceOptions are the selectable debounce intervals in milliseconds.
var DebounceOptions = []string{"250", "500", "750", "1000", "1500", "2000"}

func NewSettingsOverlay(cfg config.Config, cfgPath string, cat catalog.Catalog) *SettingsOverlay {
	s := &SettingsOverlay{
		cfg:     cfg,
		cfgPath: cfgPath,
	}
	s.buildFields(cat)
	return s
}

func (s *SettingsOverlay) SetAnimTick(tick uint) {
	s.animTick = tick
}

// Config returns the config as edited so far.
func (s *SettingsOverlay) Config() config.Config {
	return s.cfg
}

func (s *SettingsOverlay) buildFields(cat catalog.Catalog) {
	var codes []string
	for _, l := range cat.Languages() {
		codes = append(codes, l.Code)
	}
	s.fields = []settingsField{
		{label: messages.T("setting_debounce"), key: "debounce", options: DebounceOptions, value: strconv.Itoa(s.cfg.General.DebounceMS)},
		{label: messages.T("setting_backend"), key: "backend", options: []string{translator.KindMock, translator.KindRemote}, value: s.cfg.Backend.Kind},
		{label: messages.T("setting_source"), key: "source", options: codes, value: s.cfg.General.Source},
		{label: messages.T("setting_target"), key: "target", options: codes, value: s.cfg.General.Target},
	}
}

// Update handles a key while the overlay is open. closed reports that the
// overlay should be dismissed.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (closed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ", "l", "right":
		s.cycleOption(1)
	case "h", "left":
		s.cycleOption(-1)
	case "esc", "ctrl+o":
		if !s.dirty {
			return true, nil
		}
		cfg := s.cfg
		err := config.Save(cfg, s.cfgPath)
		return true, func() tea.Msg { return ConfigChangedMsg{Config: cfg, SaveErr: err} }
	}
	return false, nil
}

func (s *SettingsOverlay) cycleOption(dir int) {
	f := &s.fields[s.cursor]
	idx := 0
	for i, o := range f.options {
		if o == f.value {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	s.dirty = true
	s.applyToConfig(f.key, f.value)
}

func (s *SettingsOverlay) applyToConfig(key, value string) {
	switch key {
	case "debounce":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			s.cfg.General.DebounceMS = n
		}
	case "backend":
		s.cfg.Backend.Kind = value
	case "source":
		s.cfg.General.Source = value
	case "target":
		s.cfg.General.Target = value
	}
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.AnimatedGradientText(messages.T("settings"), s.animTick, bg)

	var rows []string
	for i, f := range s.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
		arrow := "  "
		if i == s.cursor {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}

		label := f.label + strings.Repeat(" ", max(16-len(f.label), 1))
		rows = append(rows, "  "+arrow+labelStyle.Render(label)+valueStyle.Render(" "+f.value))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(messages.T("settings_help"))

	boxWidth := 50
	if width < 54 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
