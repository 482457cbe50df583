package actions

import (
	"fmt"

	"squashmerge.dev/squashmerge/internal/config"
	"squashmerge.dev/squashmerge/internal/conflict"
	"squashmerge.dev/squashmerge/internal/workflow"
)

// buildPolicy combines the repository config with --strategy rules. Rules
// given on the command line are evaluated before configured ones.
func buildPolicy(cfg *config.RepoConfig, strategies []string) (conflict.Policy, error) {
	def, err := conflict.ParseStrategy(cfg.GetDefaultStrategy())
	if err != nil {
		return conflict.Policy{}, fmt.Errorf("invalid default_strategy in %s: %w", config.ConfigFileName, err)
	}

	policy := conflict.Policy{
		Pinned:  cfg.GetPinned(),
		Default: def,
	}

	for _, s := range strategies {
		rule, err := conflict.ParseRule(s)
		if err != nil {
			return conflict.Policy{}, err
		}
		policy.Rules = append(policy.Rules, rule)
	}

	for _, r := range cfg.Rules {
		rule, err := conflict.ParseRule(r.Pattern + "=" + r.Strategy)
		if err != nil {
			return conflict.Policy{}, fmt.Errorf("invalid rule in %s: %w", config.ConfigFileName, err)
		}
		policy.Rules = append(policy.Rules, rule)
	}

	return policy, nil
}

// completeInvocation fills in everything ParseInvocation does not know:
// the main branch, sync strictness, README path and conflict policy.
func completeInvocation(cfg *config.RepoConfig, inv workflow.Invocation, mainBranch string, strictSync bool, strategies []string) (workflow.Invocation, error) {
	policy, err := buildPolicy(cfg, strategies)
	if err != nil {
		return workflow.Invocation{}, err
	}

	inv.MainBranch = mainBranch
	if inv.MainBranch == "" {
		inv.MainBranch = cfg.GetMainBranch()
	}
	inv.StrictSync = strictSync || cfg.IsStrictSync()
	inv.ReadmePath = cfg.GetReadmePath()
	inv.Policy = policy
	inv.Strategies = strategies
	return inv, nil
}
