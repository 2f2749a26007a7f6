package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Positive treats a missing or non-positive value as fallback.
func Positive(ptr *int, fallback int) int {
	if ptr == nil || *ptr <= 0 {
		return fallback
	}
	return *ptr
}
