package response

// List guards list endpoints against serializing null instead of [].
func List[T any](items []T) []T {
	if items == nil {
		return make([]T, 0)
	}
	return items
}
