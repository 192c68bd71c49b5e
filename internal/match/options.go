package match

import "errors"

// ErrInvalidThreshold is returned when a resolver is configured with a
// negative acceptance threshold. This is the only configuration state the
// engine treats as a contract violation; every matching outcome, including
// "no match", is a normal result.
var ErrInvalidThreshold = errors.New("match threshold must not be negative")

// DefaultThreshold is the default acceptance threshold in percent.
const DefaultThreshold = 85

// Options controls which tag categories the normalizer strips.
// The zero value strips nothing.
type Options struct {
	IgnoreQuality       bool // strip quality tags (HD, [FHD], (SD), ...)
	IgnoreRegional      bool // strip regional feed indicators (East, West, ...)
	IgnoreGeographic    bool // strip 2-3 letter country codes (US:, |UK|, ...)
	IgnoreMisc          bool // strip any remaining parenthetical content
	RemoveCinemax       bool // drop the word "Cinemax" (candidates only, never the query)
	RemoveCountryPrefix bool // strip a leading country code token

	// UserIgnoredTags are removed after the built-in groups. A tag
	// containing a bracket or parenthesis is removed as a literal
	// substring; a bare word only matches on word boundaries.
	UserIgnoredTags []string
}

// DefaultOptions enables the quality, regional and geographic groups.
// Misc stripping stays off because it removes every parenthetical.
func DefaultOptions() Options {
	return Options{
		IgnoreQuality:    true,
		IgnoreRegional:   true,
		IgnoreGeographic: true,
	}
}

// MatchType classifies how a match was found.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchExact
	MatchSubstring
	MatchFuzzy
)

func (t MatchType) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// MatchResult is the outcome of a resolve call. The zero value means no
// match. Name is the original candidate text, not its normalized form.
type MatchResult struct {
	Name  string
	Score int // 0-100
	Type  MatchType
}
