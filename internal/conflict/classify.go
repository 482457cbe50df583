package conflict

import (
	"sort"

	"github.com/samber/lo"
)

// Classification is the decision for one conflicted path
type Classification struct {
	Path     string
	Strategy Strategy
	Pinned   bool
}

// Classify applies policy to the conflicted paths. The result is sorted by
// path and contains each path once.
func Classify(policy Policy, paths []string) []Classification {
	unique := lo.Uniq(lo.Compact(paths))
	sort.Strings(unique)

	return lo.Map(unique, func(p string, _ int) Classification {
		if policy.IsPinned(p) {
			return Classification{Path: p, Strategy: StrategyOurs, Pinned: true}
		}
		return Classification{Path: p, Strategy: policy.StrategyFor(p)}
	})
}

// Manual returns the paths the policy leaves for the operator
func Manual(classifications []Classification) []string {
	manual := lo.Filter(classifications, func(c Classification, _ int) bool {
		return !c.Pinned && c.Strategy == StrategyManual
	})
	return lo.Map(manual, func(c Classification, _ int) string { return c.Path })
}
