package utils

// FindIndex returns the index of the first element equal to item, or -1
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Argmax returns the index of the highest score. Ties go to the later index,
// an empty slice gives -1.
func Argmax[T any](items []T, score func(T) float64) int {
	best := -1
	var bestScore float64
	for i, item := range items {
		if s := score(item); best < 0 || s >= bestScore {
			best = i
			bestScore = s
		}
	}
	return best
}
