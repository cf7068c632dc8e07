package morphology

import (
	"regexp"
	"strings"
)

type Rule struct {
	Suffix      string
	Replacement string
}

// RuleSet is an ordered list of ending replacements. The first rule whose
// suffix matches wins, so more specific endings must come first.
type RuleSet []Rule

// NewRuleSet builds a RuleSet from suffix/replacement pairs.
func NewRuleSet(pairs ...string) RuleSet {
	if len(pairs)%2 != 0 {
		panic("morphology: odd number of suffix/replacement values")
	}
	rules := make(RuleSet, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rules = append(rules, Rule{Suffix: pairs[i], Replacement: pairs[i+1]})
	}
	return rules
}

// Match returns the index of the first rule that applies to s, or -1.
func (rules RuleSet) Match(s string) int {
	for i, rule := range rules {
		if strings.HasSuffix(s, rule.Suffix) {
			return i
		}
	}
	return -1
}

func (rules RuleSet) Apply(s string) string {
	i := rules.Match(s)
	if i < 0 {
		return s
	}
	return strings.TrimSuffix(s, rules[i].Suffix) + rules[i].Replacement
}

func ReplaceEnding(rules RuleSet, s string) string {
	return rules.Apply(s)
}

// PatternRule deletes whatever Pattern matches when the tag starts with
// TagPrefix.
type PatternRule struct {
	TagPrefix string
	Pattern   *regexp.Regexp
}

type PatternRules []PatternRule

func NewPatternRules(pairs ...string) PatternRules {
	if len(pairs)%2 != 0 {
		panic("morphology: odd number of prefix/pattern values")
	}
	rules := make(PatternRules, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		rules = append(rules, PatternRule{TagPrefix: pairs[i], Pattern: regexp.MustCompile(pairs[i+1])})
	}
	return rules
}

// Apply strips the ending selected by the first rule whose prefix the tag
// carries. The second value is false when no rule is selected.
func (rules PatternRules) Apply(tag, s string) (string, bool) {
	for _, rule := range rules {
		if strings.HasPrefix(tag, rule.TagPrefix) {
			return rule.Pattern.ReplaceAllString(s, ""), true
		}
	}
	return s, false
}
