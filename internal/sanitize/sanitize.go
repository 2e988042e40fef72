// Package sanitize redacts embedded secrets from free text before it
// leaves the local machine.
package sanitize

import "regexp"

// Rule pairs a detection pattern with its replacement. Replacement
// may use ${n} to keep non-secret captures (e.g. the key name in an
// assignment); it never echoes any part of the matched secret.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Engine applies an ordered rule list. Order matters: each rule scans
// the text already substituted by earlier rules, so a value consumed
// by an earlier rule is not counted twice. A replacement token that
// happens to match a later pattern is replaced again — a documented
// limitation, kept for deterministic behavior.
type Engine struct {
	rules []Rule
}

// New returns an engine over the given ordered rules.
func New(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// NewDefault returns an engine with the standard rule set.
func NewDefault() *Engine {
	return New(DefaultRules())
}

// Rules returns the engine's rule list in application order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Sanitize replaces every non-overlapping secret match and returns
// the redacted text with the total match count. Empty input is
// returned unchanged with count 0. Identical input always yields
// identical output.
func (e *Engine) Sanitize(text string) (string, int) {
	if text == "" {
		return text, 0
	}

	sanitized := text
	total := 0
	for _, r := range e.rules {
		n := len(r.Pattern.FindAllStringIndex(sanitized, -1))
		if n == 0 {
			continue
		}
		sanitized = r.Pattern.ReplaceAllString(sanitized, r.Replacement)
		total += n
	}
	return sanitized, total
}
