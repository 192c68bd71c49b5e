package match

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity computes an edit-distance based similarity ratio in [0, 1]:
//
//	ratio = (len(a) + len(b) - distance) / (len(a) + len(b))
//
// Lengths and distance are in runes. If either input is empty the ratio is
// 0.0, even when both are: two independently over-stripped names must not
// register as a perfect match.
func Similarity(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0.0
	}
	total := la + lb
	dist := levenshtein.ComputeDistance(a, b)
	return float64(total-dist) / float64(total)
}
