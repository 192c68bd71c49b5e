package match

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// exactRatioFloor is the similarity at or above which a candidate is still
// accepted as an exact match despite minor byte differences.
const exactRatioFloor = 0.97

// minCandidateRunes guards against false positives among heavily stripped
// names: a candidate whose normalized form is shorter than this is
// unmatchable.
const minCandidateRunes = 2

// compactRe collapses the separators ignored by the exact-stage byte
// comparison.
var compactRe = regexp.MustCompile(`[\s&-]+`)

// ResolverConfig configures a Resolver.
type ResolverConfig struct {
	// Threshold is the minimum score (0-100) for substring and fuzzy
	// matches. Zero means accept everything; negative is invalid.
	Threshold int

	// RoundHalfUp switches score conversion from truncation to
	// round-to-nearest, so a 96.5% ratio scores 97 instead of 96.
	RoundHalfUp bool
}

// Resolver finds the best matching candidate for a query name using three
// escalating strategies: exact, substring, token-sort fuzzy.
type Resolver struct {
	threshold   int
	roundHalfUp bool
}

// NewResolver validates the configuration and returns a resolver.
func NewResolver(cfg ResolverConfig) (*Resolver, error) {
	if cfg.Threshold < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, cfg.Threshold)
	}
	return &Resolver{threshold: cfg.Threshold, roundHalfUp: cfg.RoundHalfUp}, nil
}

// Threshold returns the configured acceptance threshold.
func (r *Resolver) Threshold() int {
	return r.threshold
}

func (r *Resolver) percent(ratio float64) int {
	if r.roundHalfUp {
		return int(math.Round(ratio * 100))
	}
	return int(ratio * 100)
}

type candidate struct {
	raw       string // original text, returned in MatchResult.Name
	normLower string // lowercase normalized form
}

// Resolve finds the best match for query among candidates. Candidate order
// is part of the contract: ties are broken in favor of the first-seen
// candidate. The query is never normalized with Cinemax removal; the
// candidates honor opts as given.
//
// A result is only returned when a stage accepts it: the exact stage at
// score 100 (byte equality modulo spaces, ampersands and hyphens) or
// ratio >= 0.97, the substring and fuzzy stages at the configured
// threshold. Otherwise the zero MatchResult is returned.
func (r *Resolver) Resolve(query string, candidates []string, opts Options) MatchResult {
	if len(candidates) == 0 {
		return MatchResult{}
	}

	queryOpts := opts
	queryOpts.RemoveCinemax = false
	normQuery := Normalize(query, queryOpts)
	if normQuery == "" {
		return MatchResult{}
	}
	queryLower := strings.ToLower(normQuery)
	queryCompact := compactRe.ReplaceAllString(queryLower, "")

	// Normalize every candidate once, dropping those stripped below the
	// minimum length.
	survivors := make([]candidate, 0, len(candidates))
	for _, raw := range candidates {
		norm := Normalize(raw, opts)
		if utf8.RuneCountInString(norm) < minCandidateRunes {
			continue
		}
		survivors = append(survivors, candidate{raw: raw, normLower: strings.ToLower(norm)})
	}

	// Stage 1: exact.
	var best MatchResult
	bestRatio := 0.0
	for _, c := range survivors {
		if queryCompact == compactRe.ReplaceAllString(c.normLower, "") {
			return MatchResult{Name: c.raw, Score: 100, Type: MatchExact}
		}
		ratio := Similarity(queryLower, c.normLower)
		if ratio >= exactRatioFloor && ratio > bestRatio {
			bestRatio = ratio
			best = MatchResult{Name: c.raw, Score: r.percent(ratio), Type: MatchExact}
		}
	}
	if best.Type == MatchExact {
		return best
	}

	// Stage 2: substring containment in either direction.
	bestRatio = 0.0
	for _, c := range survivors {
		if !strings.Contains(c.normLower, queryLower) && !strings.Contains(queryLower, c.normLower) {
			continue
		}
		ratio := Similarity(queryLower, c.normLower)
		if ratio > bestRatio {
			bestRatio = ratio
			best = MatchResult{Name: c.raw, Score: r.percent(ratio), Type: MatchSubstring}
		}
	}
	if best.Type == MatchSubstring && best.Score >= r.threshold {
		return best
	}

	// Stage 3: token-sort fuzzy over canonical keys. The keys are built
	// from the raw candidate text; the survival guard above already uses
	// the normalized form.
	best = MatchResult{}
	bestRatio = -1.0
	queryKey := CanonicalKey(normQuery)
	for _, c := range survivors {
		ratio := Similarity(queryKey, CanonicalKey(c.raw))
		if ratio > bestRatio {
			bestRatio = ratio
			best = MatchResult{Name: c.raw, Score: r.percent(ratio), Type: MatchFuzzy}
		}
	}
	if best.Type == MatchFuzzy && best.Score >= r.threshold {
		return best
	}

	return MatchResult{}
}
