package match

import (
	"regexp"
	"strings"
	"sync"
)

var (
	letterDigitRe   = regexp.MustCompile(`([A-Za-z])([0-9])`)
	digitLetterRe   = regexp.MustCompile(`([0-9])([A-Za-z])`)
	leadingParenRe  = regexp.MustCompile(`^\([^)]*\)\s*`)
	countryPrefixRe = regexp.MustCompile(`^([A-Z]{2,3})(?::\s*|\s+)`)
	cinemaxRe       = regexp.MustCompile(`(?i)\bCinemax\b`)

	// Hyphens have been turned into spaces by the time these run, so the
	// callsign suffix may be space separated.
	parenCallsignRe = regexp.MustCompile(`(?i)\([KW][A-Z]{2,4}(?:[ -](?:TV|CD|LP|DT|LD))?\)`)
	parenAlnumRe    = regexp.MustCompile(`\([A-Z0-9]+(?: [A-Z0-9]+)*\)`)

	leadingTheRe      = regexp.MustCompile(`(?i)^The\s+`)
	trailingNetworkRe = regexp.MustCompile(`(?i)\s+Network\s*$`)
	trailingChannelRe = regexp.MustCompile(`(?i)\s+Channel\s*$`)
	trailingTVRe      = regexp.MustCompile(`(?i)\s+TV\s*$`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
)

// Quality codes that must never be mistaken for a country prefix
// ("HD Channel" is not an HD-country channel).
var reservedQualityCodes = map[string]struct{}{
	"HD": {}, "SD": {}, "FD": {}, "UHD": {}, "FHD": {},
}

// Normalize produces the canonical matching form of a channel or stream
// name. It applies, in fixed order: letter/digit spacing, hyphen
// conversion, leading parenthetical stripping, optional country prefix and
// Cinemax removal, the enabled tag pattern groups, user-ignored tags,
// residual callsign/alphanumeric parentheticals, common prefix/suffix
// words, and whitespace cleanup.
//
// Garbage or heavily tagged input may normalize to the empty string; that
// is a legitimate outcome meaning "unmatchable", not an error.
func Normalize(name string, opts Options) string {
	// Treat numerals as separate words: ITV1 -> ITV 1.
	s := letterDigitRe.ReplaceAllString(name, "$1 $2")
	s = digitLetterRe.ReplaceAllString(s, "$1 $2")

	s = strings.ReplaceAll(s, "-", " ")

	// Strip leading parenthetical prefixes like "(US)" or "(D1)". The
	// progress check guards against malformed input looping forever.
	for {
		next := leadingParenRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}

	if opts.RemoveCountryPrefix {
		if m := countryPrefixRe.FindStringSubmatch(s); m != nil {
			if _, reserved := reservedQualityCodes[m[1]]; !reserved {
				s = s[len(m[0]):]
			}
		}
	}

	if opts.RemoveCinemax {
		s = cinemaxRe.ReplaceAllString(s, "")
	}

	if opts.IgnoreQuality {
		s = QualityGroup.Apply(s)
	}
	if opts.IgnoreRegional {
		s = RegionalGroup.Apply(s)
	}
	if opts.IgnoreGeographic {
		s = GeographicGroup.Apply(s)
	}
	if opts.IgnoreMisc {
		s = MiscGroup.Apply(s)
	}

	for _, tag := range opts.UserIgnoredTags {
		if tag == "" {
			continue
		}
		s = userTagPattern(tag).ReplaceAllString(s, "")
	}

	s = parenCallsignRe.ReplaceAllString(s, "")
	s = parenAlnumRe.ReplaceAllString(s, "")

	s = leadingTheRe.ReplaceAllString(s, "")
	s = trailingNetworkRe.ReplaceAllString(s, "")
	s = trailingChannelRe.ReplaceAllString(s, "")
	s = trailingTVRe.ReplaceAllString(s, "")

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// userTagCache memoizes compiled user tag patterns; the same tag list is
// applied to every candidate of every query.
var userTagCache sync.Map // string -> *regexp.Regexp

func userTagPattern(tag string) *regexp.Regexp {
	if re, ok := userTagCache.Load(tag); ok {
		return re.(*regexp.Regexp)
	}
	var expr string
	if strings.ContainsAny(tag, "[]()") {
		// Bracket/paren tags are removed as literal substrings.
		expr = `(?i)` + regexp.QuoteMeta(tag)
	} else {
		// Bare words only match on word boundaries so that "East" does
		// not match inside "Feast".
		expr = `(?i)\b` + regexp.QuoteMeta(tag) + `\b`
	}
	re := regexp.MustCompile(expr)
	userTagCache.Store(tag, re)
	return re
}
