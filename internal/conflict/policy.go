package conflict

import (
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
)

// Rule maps paths matching Pattern to Strategy. Patterns use path.Match
// syntax and are matched against the full slash-separated path first, then
// against the base name.
type Rule struct {
	Pattern  string
	Strategy Strategy
}

// ParseRule parses "pattern=strategy"
func ParseRule(s string) (Rule, error) {
	pattern, strategy, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(pattern) == "" {
		return Rule{}, fmt.Errorf("invalid conflict rule %q (want pattern=strategy)", s)
	}
	pattern = strings.TrimSpace(pattern)
	if _, err := path.Match(pattern, ""); err != nil {
		return Rule{}, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	parsed, err := ParseStrategy(strategy)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Pattern: pattern, Strategy: parsed}, nil
}

func (r Rule) matches(p string) bool {
	if ok, _ := path.Match(r.Pattern, p); ok {
		return true
	}
	ok, _ := path.Match(r.Pattern, path.Base(p))
	return ok
}

// Policy decides the resolution of each conflicted path
type Policy struct {
	// Pinned paths always take the main branch's version, conflicted or not
	Pinned []string
	// Rules are evaluated in order, first match wins
	Rules []Rule
	// Default applies when no rule matches
	Default Strategy
}

// IsPinned reports whether p always takes the main branch's version
func (p Policy) IsPinned(filePath string) bool {
	return lo.Contains(p.Pinned, filePath)
}

// StrategyFor returns the strategy for a non-pinned path
func (p Policy) StrategyFor(filePath string) Strategy {
	if rule, ok := lo.Find(p.Rules, func(r Rule) bool { return r.matches(filePath) }); ok {
		return rule.Strategy
	}
	return p.Default
}
