// Package session holds the translator's session state and the pure
// transitions user actions apply to it.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/translator"
)

// ErrUnknownLanguage is returned when a code is not in the catalog.
var ErrUnknownLanguage = errors.New("unknown language")

// State is everything the presentation layer renders. Transitions return a
// new State; the receiver is never modified.
type State struct {
	Source     string
	Target     string
	Input      string
	Translated string
	Pending    bool
	Err        string
}

// Status is the outcome shown in the result area.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusResolved
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// New returns the start-up state: the catalog's default pair and no text.
func New(cat catalog.Catalog) State {
	src, tgt := cat.DefaultPair()
	return State{Source: src, Target: tgt}
}

// SelectSource sets the source language. Unknown codes leave s unchanged.
func (s State) SelectSource(cat catalog.Catalog, code string) (State, error) {
	if !cat.Contains(code) {
		return s, fmt.Errorf("source %q: %w", code, ErrUnknownLanguage)
	}
	s.Source = code
	return s, nil
}

// SelectTarget sets the target language. Unknown codes leave s unchanged.
func (s State) SelectTarget(cat catalog.Catalog, code string) (State, error) {
	if !cat.Contains(code) {
		return s, fmt.Errorf("target %q: %w", code, ErrUnknownLanguage)
	}
	s.Target = code
	return s, nil
}

func (s State) SetInput(text string) State {
	s.Input = text
	return s
}

// Swap exchanges source and target from this one snapshot and clears the
// output computed for the old direction.
func (s State) Swap() State {
	s.Source, s.Target = s.Target, s.Source
	s.Translated = ""
	s.Err = ""
	return s
}

// HasText reports whether the input has anything besides whitespace.
func (s State) HasText() bool {
	return strings.TrimSpace(s.Input) != ""
}

// SamePair reports whether no translation is needed.
func (s State) SamePair() bool {
	return s.Source == s.Target
}

// Request is the backend call for the current triple.
func (s State) Request() translator.Request {
	return translator.Request{Text: s.Input, Source: s.Source, Target: s.Target}
}

func (s State) Status() Status {
	switch {
	case s.Pending:
		return StatusPending
	case s.Err != "":
		return StatusFailed
	case s.Translated != "":
		return StatusResolved
	}
	return StatusIdle
}
