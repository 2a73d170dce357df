package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/config"
	"github.com/anomredux/instant-translator/internal/coordinator"
	"github.com/anomredux/instant-translator/internal/logging"
	"github.com/anomredux/instant-translator/internal/session"
	"github.com/anomredux/instant-translator/internal/translator"
	"github.com/anomredux/instant-translator/internal/ui"
	"github.com/anomredux/instant-translator/internal/watcher"
)

// version is set via ldflags.
var version = "dev"

type options struct {
	Config   string `long:"config" env:"INSTANT_TRANSLATOR_CONFIG" description:"config file path (default: ~/.config/instant-translator/config.toml)"`
	NoTUI    bool   `long:"no-tui" description:"translate once and print JSON to stdout"`
	Text     string `long:"text" short:"t" description:"text for --no-tui (default: read stdin)"`
	From     string `long:"from" short:"f" description:"source language code"`
	To       string `long:"to" description:"target language code"`
	Backend  string `long:"backend" choice:"mock" choice:"remote" description:"override the configured backend"`
	URL      string `long:"url" env:"INSTANT_TRANSLATOR_URL" description:"translation service URL for the remote backend"`
	LogLevel string `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"override the configured log level"`
	Version  bool   `long:"version" description:"print version and exit"`
}

type result struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Input       string `json:"input"`
	Translation string `json:"translation"`
	Error       string `json:"error,omitempty"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	if opts.Version {
		fmt.Println("instant-translator", version)
		return
	}

	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := loadConfig(cfgPath, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	backend, err := translator.New(cfg.TranslatorOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backend: %v\n", err)
		os.Exit(1)
	}

	if opts.NoTUI {
		os.Exit(runNoTUI(cfg, backend, opts.Text))
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.Info("starting", "version", version, "config", cfgPath, "backend", cfg.Backend.Kind)

	app := ui.NewApp(cfg, cfgPath, backend, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	w := watcher.New(cfgPath, 2*time.Second, func(path string) {
		reloaded, err := loadConfig(path, opts)
		p.Send(ui.ConfigReloadedMsg{Config: reloaded, Err: err})
	})
	if err := w.Start(); err != nil {
		logger.Warn("config watcher disabled", "err", err)
	}
	defer w.Stop()

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads path, layers the command line over it and validates
// the result together with the language catalog.
func loadConfig(path string, opts options) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(catalog.Default()); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// applyOverrides layers command line options over the loaded config.
func applyOverrides(cfg *config.Config, opts options) {
	if opts.From != "" {
		cfg.General.Source = opts.From
	}
	if opts.To != "" {
		cfg.General.Target = opts.To
	}
	if opts.Backend != "" {
		cfg.Backend.Kind = opts.Backend
	}
	if opts.URL != "" {
		cfg.Backend.URL = opts.URL
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
}

// runNoTUI translates text once, without debouncing, and prints the
// outcome as JSON. It returns the process exit code.
func runNoTUI(cfg config.Config, backend translator.Translator, text string) int {
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return 1
		}
		text = strings.TrimRight(string(data), "\n")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cat := catalog.Default()
	s, err := session.New(cat).SelectSource(cat, cfg.General.Source)
	if err == nil {
		s, err = s.SelectTarget(cat, cfg.General.Target)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	s = s.SetInput(text)

	s, err = coordinator.TranslateOnce(ctx, backend, s)
	out := result{
		Source:      s.Source,
		Target:      s.Target,
		Input:       s.Input,
		Translation: s.Translated,
		Error:       s.Err,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if encErr := enc.Encode(out); encErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", encErr)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
