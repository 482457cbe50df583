package conflict_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"squashmerge.dev/squashmerge/internal/conflict"
)

func TestParseStrategy(t *testing.T) {
	for input, want := range map[string]conflict.Strategy{
		"ours":          conflict.StrategyOurs,
		"prefer-ours":   conflict.StrategyOurs,
		"main":          conflict.StrategyOurs,
		"Theirs":        conflict.StrategyTheirs,
		"prefer-theirs": conflict.StrategyTheirs,
		"feature":       conflict.StrategyTheirs,
		" manual ":      conflict.StrategyManual,
	} {
		got, err := conflict.ParseStrategy(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := conflict.ParseStrategy("union")
	require.Error(t, err)
}

func TestParseRule(t *testing.T) {
	t.Run("parses pattern and strategy", func(t *testing.T) {
		rule, err := conflict.ParseRule("*.lock=ours")
		require.NoError(t, err)
		require.Equal(t, conflict.Rule{Pattern: "*.lock", Strategy: conflict.StrategyOurs}, rule)
	})

	t.Run("rejects missing separator", func(t *testing.T) {
		_, err := conflict.ParseRule("*.lock")
		require.Error(t, err)
	})

	t.Run("rejects bad pattern", func(t *testing.T) {
		_, err := conflict.ParseRule("[=ours")
		require.Error(t, err)
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		_, err := conflict.ParseRule("*.go=both")
		require.Error(t, err)
	})
}

func TestPolicyStrategyFor(t *testing.T) {
	policy := conflict.Policy{
		Pinned: []string{"README.md"},
		Rules: []conflict.Rule{
			{Pattern: "docs/*", Strategy: conflict.StrategyTheirs},
			{Pattern: "*.lock", Strategy: conflict.StrategyOurs},
			{Pattern: "docs/generated.md", Strategy: conflict.StrategyOurs},
		},
		Default: conflict.StrategyManual,
	}

	require.True(t, policy.IsPinned("README.md"))
	require.False(t, policy.IsPinned("docs/README.md"))

	require.Equal(t, conflict.StrategyTheirs, policy.StrategyFor("docs/guide.md"))
	require.Equal(t, conflict.StrategyTheirs, policy.StrategyFor("docs/generated.md"), "first matching rule wins")
	require.Equal(t, conflict.StrategyOurs, policy.StrategyFor("vendor/go.lock"), "base name match")
	require.Equal(t, conflict.StrategyManual, policy.StrategyFor("main.go"))
}

func TestClassify(t *testing.T) {
	policy := conflict.Policy{Pinned: []string{"README.md"}}
	policy.Rules = []conflict.Rule{{Pattern: "*.lock", Strategy: conflict.StrategyOurs}}

	got := conflict.Classify(policy, []string{"z.go", "README.md", "go.lock", "z.go", ""})

	require.Equal(t, []conflict.Classification{
		{Path: "README.md", Strategy: conflict.StrategyOurs, Pinned: true},
		{Path: "go.lock", Strategy: conflict.StrategyOurs},
		{Path: "z.go", Strategy: conflict.StrategyManual},
	}, got)
	require.Equal(t, []string{"z.go"}, conflict.Manual(got))
}

func TestClassifyEmpty(t *testing.T) {
	got := conflict.Classify(conflict.Policy{Pinned: []string{"README.md"}}, nil)
	require.Empty(t, got)
	require.Empty(t, conflict.Manual(got))
}
