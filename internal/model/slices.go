package model

// indexOf returns the position of the first v in s, or -1.
func indexOf[T comparable](s []T, v T) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}

// insertAt inserts v at position i, clamping i to the slice bounds.
func insertAt[T any](s []T, i int, v T) []T {
	if i < 0 || i > len(s) {
		i = len(s)
	}
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// removeAt removes the element at i. An emptied slice becomes nil so that a
// remove that follows an add leaves the collection exactly as it was.
func removeAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := append(s[:i], s[i+1:]...)
	if len(out) == 0 {
		return nil
	}
	return out
}
