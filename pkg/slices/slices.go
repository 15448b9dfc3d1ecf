package sliceutils

func Map[T any, U any](values []T, mapper func(v T) U) []U {
	mapped := make([]U, len(values))
	for i, value := range values {
		mapped[i] = mapper(value)
	}
	return mapped
}

// Filter returns the values for which keep reports true, preserving order.
func Filter[T any](values []T, keep func(v T) bool) []T {
	filtered := make([]T, 0, len(values))
	for _, value := range values {
		if keep(value) {
			filtered = append(filtered, value)
		}
	}
	return filtered
}
