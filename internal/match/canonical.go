package match

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalKey produces an order-, case- and accent-insensitive comparison
// key: the string is Unicode-decomposed, combining marks are dropped,
// everything outside [a-z0-9] becomes a space, and the resulting tokens
// are sorted and rejoined. "UK ITV1" and "ITV 1 UK" canonicalize to the
// same key. The function is idempotent.
func CanonicalKey(s string) string {
	// The transformer chain is stateful, so build it per call; the engine
	// is used concurrently.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = letterDigitRe.ReplaceAllString(s, "$1 $2")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	tokens := strings.Fields(b.String())
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
