package match

import "strings"

// Normalize lower-cases the text, strips apostrophes and right single
// quotes, replaces every other non-alphanumeric rune with a space, then
// collapses runs of whitespace and trims. Idempotent: normalizing an
// already-normalized string is a no-op.
func Normalize(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\'' || r == '’':
			// dropped entirely so "what's" tokenizes as "whats"
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text on whitespace, dropping empty tokens.
// An empty or punctuation-only input yields a nil slice.
func Tokenize(s string) []string {
	norm := Normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Fields(norm)
}
