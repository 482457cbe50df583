package conflict

import (
	"fmt"
	"strings"
)

// Strategy is how a conflicted path gets resolved
type Strategy int

const (
	// StrategyManual leaves the path for the operator
	StrategyManual Strategy = iota
	// StrategyOurs keeps the main branch's version
	StrategyOurs
	// StrategyTheirs keeps the feature branch's version
	StrategyTheirs
)

func (s Strategy) String() string {
	switch s {
	case StrategyOurs:
		return "ours"
	case StrategyTheirs:
		return "theirs"
	default:
		return "manual"
	}
}

// ParseStrategy accepts ours|prefer-ours|main, theirs|prefer-theirs|feature and manual
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ours", "prefer-ours", "main":
		return StrategyOurs, nil
	case "theirs", "prefer-theirs", "feature":
		return StrategyTheirs, nil
	case "manual":
		return StrategyManual, nil
	default:
		return StrategyManual, fmt.Errorf("unknown conflict strategy %q (want ours, theirs or manual)", s)
	}
}
