package match

import (
	"regexp"
	"sort"
	"strings"
)

// Regional is a timezone/feed indicator extracted from a name.
type Regional string

const (
	RegionalNone     Regional = ""
	RegionalEast     Regional = "East"
	RegionalWest     Regional = "West"
	RegionalPacific  Regional = "Pacific"
	RegionalCentral  Regional = "Central"
	RegionalMountain Regional = "Mountain"
	RegionalAtlantic Regional = "Atlantic"
)

// ExtractedTags holds the pieces stripped from a name during normalization
// so a display name can be rebuilt afterwards.
type ExtractedTags struct {
	Regional Regional
	Extra    []string // parenthesized tags, kept in "(...)" form
	Quality  []string // bracketed tags, kept in "[...]" form
}

var (
	regionalParenRe = regexp.MustCompile(`(?i)\((` + regionalVocab + `)\)`)
	regionalWordRe  = regexp.MustCompile(`(?i)\b(` + regionalVocab + `)\b`)
	parenGroupRe    = regexp.MustCompile(`\(([^)]+)\)`)
	bracketGroupRe  = regexp.MustCompile(`\[([^\]]+)\]`)
	callsignShapeRe = regexp.MustCompile(`^[KW][A-Z]{3}(?:-(?:TV|CD|LP|DT|LD))?$`)
)

// ExtractTags pulls the regional indicator, extra parenthesized tags and
// bracketed quality tags out of a raw name. The parenthesized regional
// form wins over a bare word; for bare words only the last occurrence
// counts. When the name starts with "(", the first parenthetical is a
// stripped prefix, not a tag. User-ignored tags (in their "(...)"/"[...]"
// spelling) are excluded.
func ExtractTags(name string, userIgnoredTags []string) ExtractedTags {
	var tags ExtractedTags

	if m := regionalParenRe.FindStringSubmatch(name); m != nil {
		tags.Regional = canonicalRegional(m[1])
	} else if ms := regionalWordRe.FindAllStringSubmatch(name, -1); ms != nil {
		tags.Regional = canonicalRegional(ms[len(ms)-1][1])
	}

	ignored := make(map[string]struct{}, len(userIgnoredTags))
	for _, t := range userIgnoredTags {
		ignored[t] = struct{}{}
	}
	isIgnored := func(tag string) bool {
		if _, ok := ignored["("+tag+")"]; ok {
			return true
		}
		_, ok := ignored["["+tag+"]"]
		return ok
	}

	firstIsPrefix := strings.HasPrefix(strings.TrimSpace(name), "(")
	for idx, m := range parenGroupRe.FindAllStringSubmatch(name, -1) {
		tag := m[1]
		if idx == 0 && firstIsPrefix {
			continue
		}
		if isIgnored(tag) {
			continue
		}
		upper := strings.ToUpper(tag)
		if canonicalRegional(upper) != RegionalNone {
			continue
		}
		if callsignShapeRe.MatchString(upper) {
			continue
		}
		tags.Extra = append(tags.Extra, "("+tag+")")
	}

	for _, m := range bracketGroupRe.FindAllStringSubmatch(name, -1) {
		if isIgnored(m[1]) {
			continue
		}
		tags.Quality = append(tags.Quality, "["+m[1]+"]")
	}

	return tags
}

func canonicalRegional(s string) Regional {
	switch strings.ToLower(s) {
	case "east":
		return RegionalEast
	case "west":
		return RegionalWest
	case "pacific":
		return RegionalPacific
	case "central":
		return RegionalCentral
	case "mountain":
		return RegionalMountain
	case "atlantic":
		return RegionalAtlantic
	default:
		return RegionalNone
	}
}

// BuildDisplayName reassembles a display name from a base and previously
// extracted tags: "<base> <Regional> (<extra>) ... [<quality>] ...".
// The regional indicator is attached without parentheses.
func BuildDisplayName(base string, tags ExtractedTags) string {
	parts := make([]string, 0, 1+len(tags.Extra)+len(tags.Quality))
	parts = append(parts, base)
	if tags.Regional != RegionalNone {
		parts = append(parts, string(tags.Regional))
	}
	parts = append(parts, tags.Extra...)
	parts = append(parts, tags.Quality...)
	return strings.Join(parts, " ")
}

// Quality precedence for stream ordering, best first.
var qualityOrder = []string{"4K", "FHD", "HD", "SD", "Slow"}

var qualityRankRes = func() [][]*regexp.Regexp {
	res := make([][]*regexp.Regexp, len(qualityOrder))
	for i, q := range qualityOrder {
		res[i] = []*regexp.Regexp{
			regexp.MustCompile(`(?i)\[` + q + `\]`),
			regexp.MustCompile(`(?i)\(` + q + `\)`),
			regexp.MustCompile(`(?i)\b` + q + `\b`),
		}
	}
	return res
}()

func qualityRank(name string) int {
	for i, patterns := range qualityRankRes {
		for _, re := range patterns {
			if re.MatchString(name) {
				return i
			}
		}
	}
	return len(qualityOrder)
}

// SortByQuality orders stream names by quality precedence (4K first, then
// FHD, HD, SD, Slow, unknown last). The sort is stable: names of equal
// quality keep their input order. The input slice is not modified.
func SortByQuality(names []string) []string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool {
		return qualityRank(sorted[i]) < qualityRank(sorted[j])
	})
	return sorted
}
