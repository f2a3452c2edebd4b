package rewrite

import "slices"

// Transform applies every operation of set, in declaration order, to a copy
// of pairs. Each operation sees the result of the ones before it.
func Transform(set *OperationSet, pairs []Pair) []Pair {
	working := slices.Clone(pairs)
	for name, op := range set.All() {
		working = op.Apply(name, working)
	}
	return working
}
