package agent

import (
	"context"
	"slices"
)

// chainKey is the context key type carrying the names of agents that are
// currently handling a delegated message.
type chainKey struct{}

func withChain(ctx context.Context, name string) context.Context {
	chain := chainFromContext(ctx)
	next := make([]string, len(chain), len(chain)+1)
	copy(next, chain)
	return context.WithValue(ctx, chainKey{}, append(next, name))
}

func chainFromContext(ctx context.Context) []string {
	chain, _ := ctx.Value(chainKey{}).([]string)
	return chain
}

func inChain(ctx context.Context, name string) bool {
	return slices.Contains(chainFromContext(ctx), name)
}
