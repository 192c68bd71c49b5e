package match

import "regexp"

// RuleKind distinguishes where and how a tag rule may match. Bare-word
// vocabularies need separate start/end/interior rules so that a tag in the
// middle of a name can be removed without destroying ordinary words.
type RuleKind int

const (
	RuleBracketed RuleKind = iota // [TAG]
	RuleParen                     // (TAG)
	RuleStart                     // bare word anchored at string start
	RuleEnd                       // bare word anchored at string end
	RuleInterior                  // bare word delimited by whitespace
)

// Rule is a single removal rule: a compiled pattern plus its replacement.
type Rule struct {
	Kind RuleKind
	re   *regexp.Regexp
	repl string
}

// Apply runs the rule once over the whole input.
func (r Rule) Apply(s string) string {
	return r.re.ReplaceAllString(s, r.repl)
}

// Group is an ordered list of rules applied sequentially, left to right.
// Each rule sees the text produced by the previous one.
type Group struct {
	Name  string
	Rules []Rule
}

// Apply runs every rule of the group in declaration order.
func (g Group) Apply(s string) string {
	for _, r := range g.Rules {
		s = r.Apply(s)
	}
	return s
}

// Quality tag vocabulary. "4K" appears as 4\s?K because letter/digit
// spacing runs before tag removal and splits it into "4 K".
const qualityVocab = `4\s?K|UHD|FHD|HD|SD|FD|Unknown|Unk|Slow|Dead|Backup|CX`

// Regional feed vocabulary.
const regionalVocab = `East|West|Pacific|Central|Mountain|Atlantic`

// bareWordRules builds the start/end/interior sub-rules for a bare
// vocabulary. The interior rule replaces with a single space; whitespace
// collapse at the end of normalization tidies up.
func bareWordRules(vocab string) []Rule {
	return []Rule{
		{Kind: RuleStart, re: regexp.MustCompile(`(?i)^(?:` + vocab + `):?\s+`), repl: ""},
		{Kind: RuleEnd, re: regexp.MustCompile(`(?i)\s+(?:` + vocab + `)$`), repl: ""},
		{Kind: RuleInterior, re: regexp.MustCompile(`(?i)\s(?:` + vocab + `)\s`), repl: " "},
	}
}

// QualityGroup removes quality tags in bracketed, parenthesized and bare
// form ([HD], (HD), leading/trailing/interior HD).
var QualityGroup = Group{
	Name: "quality",
	Rules: append([]Rule{
		{Kind: RuleBracketed, re: regexp.MustCompile(`(?i)\[(?:` + qualityVocab + `)\]`), repl: ""},
		{Kind: RuleParen, re: regexp.MustCompile(`(?i)\((?:` + qualityVocab + `)\)`), repl: ""},
	}, bareWordRules(qualityVocab)...),
}

// RegionalGroup removes regional feed indicators (East, West, Pacific, ...)
// in parenthesized or bare form.
var RegionalGroup = Group{
	Name: "regional",
	Rules: append([]Rule{
		{Kind: RuleParen, re: regexp.MustCompile(`(?i)\((?:` + regionalVocab + `)\)`), repl: ""},
	}, bareWordRules(regionalVocab)...),
}

// GeographicGroup removes 2-3 letter country/region codes. These rules stay
// case sensitive: a lowercase "us:" is not a geographic prefix, and a
// case-insensitive match would eat ordinary short words.
var GeographicGroup = Group{
	Name: "geographic",
	Rules: []Rule{
		{Kind: RuleInterior, re: regexp.MustCompile(`\b[A-Z]{2,3}:\s*`), repl: ""},
		{Kind: RuleInterior, re: regexp.MustCompile(`\b[A-Z]{2,3}-\s*`), repl: ""},
		{Kind: RuleInterior, re: regexp.MustCompile(`\|[A-Z]{2,3}\|`), repl: " "},
		{Kind: RuleBracketed, re: regexp.MustCompile(`\[[A-Z]{2,3}\]`), repl: " "},
	},
}

// MiscGroup strips any parenthetical content unconditionally. It is the
// broadest group and therefore applied last, and only when explicitly
// enabled.
var MiscGroup = Group{
	Name: "misc",
	Rules: []Rule{
		{Kind: RuleParen, re: regexp.MustCompile(`\([^)]*\)`), repl: " "},
	},
}
