package messages

var en = map[string]string{
	"app_title":          "Instant Translator",
	"initializing":       "Initializing...",
	"terminal_too_small": "Terminal too small",
	"current_size":       "Current: %dx%d",

	"label_from":        "From",
	"label_to":          "To",
	"label_input":       "Text",
	"label_result":      "Translation (%s)",
	"input_placeholder": "Type Something...",
	"translating":       "Translating...",
	"backend_label":     "backend: %s",

	"status_help":     "help",
	"status_swap":     "swap",
	"status_focus":    "focus",
	"status_settings": "settings",
	"status_quit":     "quit",

	"keyboard_shortcuts": "Keyboard Shortcuts",
	"help_focus":         "Move focus between pickers and text",
	"help_pick_language": "Change language (picker focused)",
	"help_swap":          "Swap source and target",
	"help_settings":      "Open settings",
	"help_toggle_help":   "Toggle this help",
	"help_quit":          "Quit",
	"help_close":         "Press Esc or F1 to close",

	"settings":         "Settings",
	"settings_help":    "j/k: move  h/l: change  Esc: save & close",
	"setting_debounce": "Debounce (ms)",
	"setting_backend":  "Backend",
	"setting_source":   "Default source",
	"setting_target":   "Default target",

	"config_reloaded":     "Config reloaded",
	"config_reload_error": "Config reload failed: %s",
	"config_save_error":   "Saving settings failed: %s",
	"backend_error":       "Backend setup failed: %s",
}
