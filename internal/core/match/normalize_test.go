package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "What Is Your REFUND Policy", "what is your refund policy"},
		{"strips apostrophes", "what's your refund policy?", "whats your refund policy"},
		{"strips right single quote", "what’s up", "whats up"},
		{"punctuation becomes space", "refund-policy/terms", "refund policy terms"},
		{"collapses whitespace", "  hello    world  ", "hello world"},
		{"empty input", "", ""},
		{"punctuation only", "?!...", ""},
		{"digits survive", "open 24/7", "open 24 7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What's your refund policy?!",
		"  MIXED   Case ’ And -- Symbols ",
		"",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"what", "is", "your", "refund", "policy"},
		Tokenize("What is your refund policy?"))
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("  ?!  "))
	assert.Equal(t, []string{"whats", "new"}, Tokenize("what's new"))
}
