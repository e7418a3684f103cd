package slices

import (
	originSlices "slices"

	"golang.org/x/exp/constraints"
)

// GenericsFilterSliceEmptyValues drops zero values, keeping order. The result
// is never nil.
func GenericsFilterSliceEmptyValues[T comparable](list []T) []T {
	var zero T
	return originSlices.DeleteFunc(append([]T{}, list...), func(v T) bool {
		return v == zero
	})
}

// GenericsUniqueSliceValues drops repeated values, keeping the first
// occurrence.
func GenericsUniqueSliceValues[T comparable](list []T) []T {
	seen := make(map[T]bool, len(list))
	result := make([]T, 0, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}

// GenericsStandardizeSlice returns the sorted set of non-empty values.
func GenericsStandardizeSlice[T constraints.Ordered](list []T) []T {
	result := GenericsFilterSliceEmptyValues(list)
	originSlices.Sort(result)
	return originSlices.Compact(result)
}
