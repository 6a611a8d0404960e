package csm

// contains returns true if the element is included in the slice.
func contains[T comparable](slice []T, element T) bool {
	for _, e := range slice {
		if element == e {
			return true
		}
	}
	return false
}
