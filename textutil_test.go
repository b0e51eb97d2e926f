package ambr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveHTMLTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "color tags are stripped",
			input:    `<color=#FFD780FF>Elemental Burst</color> deals damage`,
			expected: "Elemental Burst deals damage",
		},
		{
			name:     "sprite presets are stripped",
			input:    `Press {SPRITE_PRESET#1001} to jump`,
			expected: "Press  to jump",
		},
		{
			name:     "escaped newlines become real newlines",
			input:    `First line\nSecond line`,
			expected: "First line\nSecond line",
		},
		{
			name:     "plain text is unchanged",
			input:    "Nothing to strip",
			expected: "Nothing to strip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveHTMLTags(tt.input))
		})
	}
}

func TestReplacePronouns(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "both markers present",
			input:    "{M#He}{F#She} is a traveler",
			expected: "She/He is a traveler",
		},
		{
			name:     "text without markers is unchanged",
			input:    "The traveler arrived",
			expected: "The traveler arrived",
		},
		{
			name:     "only one marker is left alone",
			input:    "{F#She} is a traveler",
			expected: "{F#She} is a traveler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplacePronouns(tt.input))
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		params   map[string]any
		expected string
	}{
		{
			name:     "integer parameter",
			input:    "Deals $[D__KEY]% DMG",
			params:   map[string]any{"D__KEY": 50},
			expected: "Deals 50% DMG",
		},
		{
			name:     "float parameter",
			input:    "Heals $[H]% of Max HP",
			params:   map[string]any{"H": 2.5},
			expected: "Heals 2.5% of Max HP",
		},
		{
			name:     "sprite presets are dropped",
			input:    "Press {SPRITE_PRESET#1} for $[X]",
			params:   map[string]any{"X": "more"},
			expected: "Press  for more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplacePlaceholders(tt.input, tt.params))
		})
	}
}

func TestFormatLayout(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "layout variants collapse to the first variant's word",
			input:    "Use {LAYOUT_MOBILE#Tap}{LAYOUT_PC#Press} to attack",
			expected: "Use Tap to attack",
		},
		{
			name:     "text without layout markers is unchanged",
			input:    "Use the skill",
			expected: "Use the skill",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLayout(tt.input))
		})
	}
}

func TestGetParams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		params   []float64
		expected []string
	}{
		{
			name:     "percentage with one decimal",
			input:    "Skill DMG|{param1:F1P}",
			params:   []float64{0.5},
			expected: []string{"Skill DMG", "50.0%"},
		},
		{
			name:     "plain value with one decimal",
			input:    "CD|{param2:F1}s",
			params:   []float64{0.5, 6},
			expected: []string{"CD", "6.0s"},
		},
		{
			name:     "integer format",
			input:    "Duration|{param1:I}s",
			params:   []float64{12.7},
			expected: []string{"Duration", "12s"},
		},
		{
			name:     "percentage with no decimals",
			input:    "Ratio|{param1:P}",
			params:   []float64{0.24},
			expected: []string{"Ratio", "24%"},
		},
		{
			name:     "out of range parameter index is kept verbatim",
			input:    "DMG|{param9:F1P}",
			params:   []float64{0.5},
			expected: []string{"DMG", "{param9:F1P}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetParams(tt.input, tt.params))
		})
	}
}

func TestGetSkillAttributes(t *testing.T) {
	descriptions := []string{
		"Skill DMG|{param1:F1P}",
		"CD|{param2:F1}s",
		"Not a key value pair",
	}
	got := GetSkillAttributes(descriptions, []float64{0.5, 6})
	assert.Equal(t, "Skill DMG: 50.0%\nCD: 6.0s\n", got)
}
