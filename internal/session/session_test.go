package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anomredux/instant-translator/internal/catalog"
	"github.com/anomredux/instant-translator/internal/translator"
)

func TestNew_Defaults(t *testing.T) {
	s := New(catalog.Default())
	assert.Equal(t, State{Source: "en", Target: "es"}, s)
	assert.Equal(t, StatusIdle, s.Status())
}

func TestSelect(t *testing.T) {
	cat := catalog.Default()
	s := New(cat)

	s, err := s.SelectSource(cat, "fr")
	require.NoError(t, err)
	s, err = s.SelectTarget(cat, "de")
	require.NoError(t, err)
	assert.Equal(t, "fr", s.Source)
	assert.Equal(t, "de", s.Target)

	unchanged, err := s.SelectSource(cat, "xx")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Equal(t, s, unchanged)

	_, err = s.SelectTarget(cat, "")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestSwap(t *testing.T) {
	s := State{Source: "en", Target: "es", Input: "hello", Translated: "hola", Err: "old"}
	got := s.Swap()

	assert.Equal(t, "es", got.Source)
	assert.Equal(t, "en", got.Target)
	assert.Empty(t, got.Translated)
	assert.Empty(t, got.Err)
	assert.Equal(t, "hello", got.Input)
	assert.Equal(t, "en", s.Source, "receiver is not modified")
}

func TestSwap_Twice(t *testing.T) {
	s := State{Source: "de", Target: "it"}
	assert.Equal(t, s, s.Swap().Swap())
}

func TestSwap_SamePair(t *testing.T) {
	s := State{Source: "fr", Target: "fr"}.Swap()
	assert.Equal(t, "fr", s.Source)
	assert.Equal(t, "fr", s.Target)
}

func TestHasText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"   ", false},
		{"\n\t ", false},
		{"a", true},
		{"  hello  ", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, State{Input: tt.input}.HasText(), "input %q", tt.input)
	}
}

func TestRequest(t *testing.T) {
	s := State{Source: "en", Target: "it", Input: "good morning"}
	assert.Equal(t, translator.Request{Text: "good morning", Source: "en", Target: "it"}, s.Request())
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Status
	}{
		{"idle", State{}, StatusIdle},
		{"pending wins", State{Pending: true, Translated: "x", Err: "e"}, StatusPending},
		{"failed", State{Translated: "x", Err: "e"}, StatusFailed},
		{"resolved", State{Translated: "x"}, StatusResolved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Status())
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
