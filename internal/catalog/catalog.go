package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Language is a selectable translation language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog is an ordered, read-only list of languages.
// Order is display order for the pickers.
type Catalog struct {
	langs []Language
}

var defaultLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
}

// Default returns the built-in five-language catalog.
func Default() Catalog {
	return New(defaultLanguages)
}

// New copies langs into a catalog. Call Validate before trusting input
// that did not come from Default.
func New(langs []Language) Catalog {
	cp := make([]Language, len(langs))
	copy(cp, langs)
	return Catalog{langs: cp}
}

// Languages returns a copy of the entries in display order.
func (c Catalog) Languages() []Language {
	cp := make([]Language, len(c.langs))
	copy(cp, c.langs)
	return cp
}

func (c Catalog) Len() int {
	return len(c.langs)
}

// Index returns the position of code, or -1.
func (c Catalog) Index(code string) int {
	for i, l := range c.langs {
		if l.Code == code {
			return i
		}
	}
	return -1
}

func (c Catalog) Contains(code string) bool {
	return c.Index(code) >= 0
}

// Lookup returns the language for code.
func (c Catalog) Lookup(code string) (Language, bool) {
	i := c.Index(code)
	if i < 0 {
		return Language{}, false
	}
	return c.langs[i], true
}

// Name returns the display name for code, or the code itself if unknown.
func (c Catalog) Name(code string) string {
	if l, ok := c.Lookup(code); ok {
		return l.Name
	}
	return code
}

// Next steps dir entries away from code, wrapping at both ends.
// Unknown codes start from the first entry.
func (c Catalog) Next(code string, dir int) string {
	n := len(c.langs)
	if n == 0 {
		return code
	}
	i := c.Index(code)
	if i < 0 {
		return c.langs[0].Code
	}
	i = ((i+dir)%n + n) % n
	return c.langs[i].Code
}

// DefaultPair returns the initial source and target codes: the first and
// second entries, falling back to "en" and "es".
func (c Catalog) DefaultPair() (source, target string) {
	source, target = "en", "es"
	if len(c.langs) > 0 {
		source = c.langs[0].Code
	}
	if len(c.langs) > 1 {
		target = c.langs[1].Code
	}
	return source, target
}

// Validate checks that every code is a well-formed BCP 47 tag, names are
// present and codes are unique.
func (c Catalog) Validate() error {
	if len(c.langs) == 0 {
		return errors.New("catalog is empty")
	}
	seen := make(map[string]struct{}, len(c.langs))
	for _, l := range c.langs {
		if _, err := language.Parse(l.Code); err != nil {
			return fmt.Errorf("language %q: %w", l.Code, err)
		}
		if l.Name == "" {
			return fmt.Errorf("language %q: missing name", l.Code)
		}
		if _, dup := seen[l.Code]; dup {
			return fmt.Errorf("language %q: duplicate code", l.Code)
		}
		seen[l.Code] = struct{}{}
	}
	return nil
}
