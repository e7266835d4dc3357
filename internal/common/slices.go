package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Filter returns a new slice holding the elements for which keep returns true,
// in their original order. The result is never nil.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// Group is a run of elements sharing the same key.
type Group[K comparable, E any] struct {
	Key   K
	Items []E
}

// GroupBy partitions s by key. Groups appear in the order their key is first
// seen and items keep their relative order inside a group.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) []Group[K, E] {
	groups := make([]Group[K, E], 0)
	index := make(map[K]int)

	for _, e := range s {
		k := key(e)

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, E]{Key: k})
		}

		groups[i].Items = append(groups[i].Items, e)
	}

	return groups
}
