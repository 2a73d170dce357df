package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	var codes []string
	for _, l := range c.Languages() {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"en", "es", "fr", "de", "it"}, codes)
	assert.Equal(t, "German", c.Name("de"))
	assert.Equal(t, "xx", c.Name("xx"))
}

func TestLanguages_ReturnsCopy(t *testing.T) {
	c := Default()
	langs := c.Languages()
	langs[0].Code = "zz"
	assert.True(t, c.Contains("en"))
	assert.False(t, c.Contains("zz"))
}

func TestDefaultPair(t *testing.T) {
	tests := []struct {
		name       string
		langs      []Language
		wantSource string
		wantTarget string
	}{
		{"default catalog", defaultLanguages, "en", "es"},
		{"single entry", []Language{{Code: "fr", Name: "French"}}, "fr", "es"},
		{"empty", nil, "en", "es"},
		{"reordered", []Language{{Code: "de", Name: "German"}, {Code: "it", Name: "Italian"}}, "de", "it"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, tg := New(tt.langs).DefaultPair()
			assert.Equal(t, tt.wantSource, s)
			assert.Equal(t, tt.wantTarget, tg)
		})
	}
}

func TestNext(t *testing.T) {
	c := Default()
	assert.Equal(t, "es", c.Next("en", 1))
	assert.Equal(t, "it", c.Next("en", -1))
	assert.Equal(t, "en", c.Next("it", 1))
	assert.Equal(t, "en", c.Next("unknown", 1))
	assert.Equal(t, "x", New(nil).Next("x", 1))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		langs   []Language
		wantErr string
	}{
		{"empty", nil, "catalog is empty"},
		{"bad code", []Language{{Code: "not a tag", Name: "Bad"}}, `language "not a tag"`},
		{"missing name", []Language{{Code: "en"}}, "missing name"},
		{"duplicate", []Language{{Code: "en", Name: "English"}, {Code: "en", Name: "Again"}}, "duplicate code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.langs).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
