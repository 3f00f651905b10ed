package utils

func RemoveDuplicates[T comparable](in []T) []T {
	seen := make(map[T]bool)
	out := []T{}
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// RemoveAt returns a copy of in without the element at index i.
// Out of range indexes yield an unchanged copy.
func RemoveAt[T any](in []T, i int) []T {
	out := make([]T, 0, len(in))
	for j, v := range in {
		if j != i {
			out = append(out, v)
		}
	}
	return out
}
