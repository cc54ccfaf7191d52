// Package match implements the lexical FAQ matcher: a free-text question
// is resolved against a client's FAQ set by exact match, token-subset
// match, then Jaccard similarity over token sets.
package match

import "strings"

// MatchThreshold is the minimum Jaccard similarity for the fallback rule.
// Boundary inclusive: a score of exactly 0.35 matches.
const MatchThreshold = 0.35

// Entry is the answer side of a catalog row.
type Entry struct {
	ID      uint
	Answer  string
	Popular bool
}

// Catalog is an insertion-ordered FAQ question set. Order matters: when
// two keys tie on similarity the first one added wins, so callers load
// entries in a deterministic order.
type Catalog struct {
	keys    []string
	entries map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Add appends a question to the catalog. Re-adding a question replaces its
// entry without changing its position.
func (c *Catalog) Add(question string, e Entry) {
	if _, exists := c.entries[question]; !exists {
		c.keys = append(c.keys, question)
	}
	c.entries[question] = e
}

// Get returns the entry for an exact stored question.
func (c *Catalog) Get(question string) (Entry, bool) {
	e, ok := c.entries[question]
	return e, ok
}

// Questions returns the stored questions in insertion order.
func (c *Catalog) Questions() []string {
	return c.keys
}

// Len returns the number of stored questions.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// FindBestMatch resolves a free-text question against the catalog and
// returns the matching stored question. Rules in priority order, each
// evaluated per candidate key:
//
//  1. exact: normalized input equals normalized key → return immediately
//  2. subset: every key token appears among the input tokens → return
//     immediately (a longer utterance containing the full FAQ phrase)
//  3. similarity: highest Jaccard over token sets wins if ≥ MatchThreshold
//
// Absence of a match is a normal outcome, reported via ok=false.
func FindBestMatch(question string, faqs *Catalog) (string, bool) {
	if faqs.Len() == 0 {
		return "", false
	}

	qNorm := Normalize(question)
	if qNorm == "" {
		return "", false
	}
	qTokens := strings.Fields(qNorm)
	qSet := tokenSet(qTokens)

	bestKey := ""
	bestScore := 0.0
	for _, key := range faqs.keys {
		keyNorm := Normalize(key)
		if qNorm == keyNorm {
			return key, true
		}

		keyTokens := strings.Fields(keyNorm)
		if len(keyTokens) > 0 && isSubset(keyTokens, qSet) {
			return key, true
		}

		// Strict > keeps the first key at the max score.
		if score := jaccard(qSet, tokenSet(keyTokens)); score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	if bestScore >= MatchThreshold {
		return bestKey, true
	}
	return "", false
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func isSubset(tokens []string, of map[string]struct{}) bool {
	for _, t := range tokens {
		if _, ok := of[t]; !ok {
			return false
		}
	}
	return true
}

// jaccard returns intersection size over union size of two token sets.
// Two empty sets score 0, not 1.
func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
