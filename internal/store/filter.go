package store

// FilterByField returns the items whose field equals value, in their original order.
// The result is never nil.
func FilterByField[T any, V comparable](items []T, field func(T) V, value V) []T {
	out := make([]T, 0)
	for _, item := range items {
		if field(item) == value {
			out = append(out, item)
		}
	}
	return out
}
