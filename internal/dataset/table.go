package dataset

// Groups holds grouped rows with keys kept in first-seen order. The stable key
// order is what makes descending sorts over grouped aggregates deterministic
// on ties.
type Groups[K comparable, T any] struct {
	keys []K
	rows map[K][]T
}

// GroupBy groups rows by the given key function, preserving the order in which
// keys are first encountered.
func GroupBy[K comparable, T any](rows []T, key func(T) K) *Groups[K, T] {
	g := &Groups[K, T]{rows: make(map[K][]T)}
	for _, row := range rows {
		k := key(row)
		if _, seen := g.rows[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.rows[k] = append(g.rows[k], row)
	}
	return g
}

// Keys returns the group keys in first-seen order.
func (g *Groups[K, T]) Keys() []K {
	return g.keys
}

// Rows returns the rows grouped under key k.
func (g *Groups[K, T]) Rows(k K) []T {
	return g.rows[k]
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int {
	return len(g.keys)
}

// DistinctCount returns the number of distinct values produced by sel over rows.
func DistinctCount[T any, V comparable](rows []T, sel func(T) V) int {
	seen := make(map[V]struct{}, len(rows))
	for _, row := range rows {
		seen[sel(row)] = struct{}{}
	}
	return len(seen)
}
