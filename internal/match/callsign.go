package match

import (
	"regexp"
	"strings"
)

var (
	callsignDigitPrefixRe = regexp.MustCompile(`^D[0-9]+-`)
	callsignUSPrefixRe    = regexp.MustCompile(`(?i)^USA?\s*[^a-zA-Z0-9]*\s*`)

	// Priority cascade, most reliable first.
	callsignParenBareRe   = regexp.MustCompile(`(?i)\(([KW][A-Z]{3})\)`)
	callsignParenSuffixRe = regexp.MustCompile(`(?i)\(([KW][A-Z]{2,4}-(?:TV|CD|LP|DT|LD))\)`)
	callsignEndRe         = regexp.MustCompile(`(?i)\b([KW][A-Z]{2,4}(?:-(?:TV|CD|LP|DT|LD))?)\s*(?:\.[a-z]+)?\s*$`)
	callsignWordRe        = regexp.MustCompile(`(?i)\b([KW][A-Z]{2,4}(?:-(?:TV|CD|LP|DT|LD))?)\b`)

	callsignSuffixRe = regexp.MustCompile(`-(?:TV|CD|LP|DT|LD)$`)
)

// Ordinary words that happen to fit the K/W callsign letter pattern.
var reservedCallsignWords = map[string]struct{}{
	"WEST": {}, "EAST": {}, "KIDS": {}, "WOMEN": {}, "WILD": {}, "WORLD": {},
}

// ExtractCallsign recognizes a US broadcast callsign (K or W plus 2-4
// letters, optional -TV/-CD/-LP/-DT/-LD suffix) in a raw channel name.
// Strategies are tried in priority order: parenthesized bare callsign,
// parenthesized suffixed callsign, callsign at the end of the name, then
// any callsign-shaped word. Reserved words like WEST or KIDS are rejected.
func ExtractCallsign(name string) (string, bool) {
	name = callsignDigitPrefixRe.ReplaceAllString(name, "")
	name = callsignUSPrefixRe.ReplaceAllString(name, "")

	if m := callsignParenBareRe.FindStringSubmatch(name); m != nil {
		if cs := strings.ToUpper(m[1]); !isReservedCallsign(cs) {
			return cs, true
		}
	}
	if m := callsignParenSuffixRe.FindStringSubmatch(name); m != nil {
		return strings.ToUpper(m[1]), true
	}
	if m := callsignEndRe.FindStringSubmatch(name); m != nil {
		if cs := strings.ToUpper(m[1]); !isReservedCallsign(cs) {
			return cs, true
		}
	}
	if m := callsignWordRe.FindStringSubmatch(name); m != nil {
		if cs := strings.ToUpper(m[1]); !isReservedCallsign(cs) {
			return cs, true
		}
	}
	return "", false
}

// StripCallsignSuffix removes a -TV/-CD/-LP/-DT/-LD suffix for display and
// base-form lookups.
func StripCallsignSuffix(callsign string) string {
	return callsignSuffixRe.ReplaceAllString(callsign, "")
}

func isReservedCallsign(cs string) bool {
	_, ok := reservedCallsignWords[cs]
	return ok
}
