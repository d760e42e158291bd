package automation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"named key", "enter", "enter", true},
		{"uppercase named key", "ENTER", "enter", true},
		{"surrounding whitespace", "  esc  ", "esc", true},
		{"alias return", "return", "enter", true},
		{"alias escape", "escape", "esc", true},
		{"alias control", "control", "ctrl", true},
		{"alias win", "win", "cmd", true},
		{"alias super", "super", "cmd", true},
		{"alias page_down", "page_down", "pagedown", true},
		{"single letter", "a", "a", true},
		{"single digit", "7", "7", true},
		{"single punctuation", "/", "/", true},
		{"function key", "f12", "f12", true},
		{"numpad key", "num5", "num5", true},
		{"media key", "audio_mute", "audio_mute", true},
		{"unknown name", "frobnicate", "", false},
		{"empty", "", "", false},
		{"bare space character", " ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKnownKeys(t *testing.T) {
	keys := KnownKeys()

	assert.NotEmpty(t, keys)
	assert.True(t, sort.StringsAreSorted(keys), "KnownKeys must return sorted names")
	assert.Contains(t, keys, "enter")
	assert.Contains(t, keys, "f24")
	// Aliases are caller-side spellings, not backend symbols.
	assert.NotContains(t, keys, "return")
}
