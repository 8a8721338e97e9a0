package sliceutils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Returns map keys in ascending order
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// Returns a new slice with the elements for which keep returns true, the order is preserved
func Filter[T any](slice []T, keep func(T) bool) []T {
	res := make([]T, 0, len(slice))
	for i := range slice {
		if keep(slice[i]) {
			res = append(res, slice[i])
		}
	}
	return res
}

func Map[T any, R any](slice []T, mapFunc func(T) R) []R {
	res := make([]R, len(slice))
	for i := range slice {
		res[i] = mapFunc(slice[i])
	}
	return res
}

// Groups elements by key and reduces each group to a single value.
// init is called with the first element of a group, reduce with every next one.
func GroupReduce[T any, K comparable, V any](slice []T, key func(T) K,
	init func(T) V, reduce func(V, T) V) map[K]V {
	res := make(map[K]V)
	for i := range slice {
		k := key(slice[i])
		acc, ok := res[k]
		if !ok {
			res[k] = init(slice[i])
			continue
		}
		res[k] = reduce(acc, slice[i])
	}
	return res
}
