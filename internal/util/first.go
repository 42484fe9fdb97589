package util

// First returns the value of the first candidate that lookup resolves.
// It is the shared fallback chain behind translations and payload fields.
func First[K any, V any](lookup func(K) (V, bool), candidates ...K) (V, bool) {
	for _, c := range candidates {
		if v, ok := lookup(c); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
