package query

import (
	"cmp"
	"slices"
)

// SortKey compares two records on one attribute. Keys are applied in order,
// later keys breaking ties left by earlier ones.
type SortKey[T any] func(a, b T) int

// Asc orders records by ascending accessor value. A nil accessor yields a
// nil key, which Sort ignores.
func Asc[T any, K cmp.Ordered](accessor func(T) K) SortKey[T] {
	if accessor == nil {
		return nil
	}
	return func(a, b T) int { return cmp.Compare(accessor(a), accessor(b)) }
}

// Desc orders records by descending accessor value.
func Desc[T any, K cmp.Ordered](accessor func(T) K) SortKey[T] {
	if accessor == nil {
		return nil
	}
	return func(a, b T) int { return cmp.Compare(accessor(b), accessor(a)) }
}

// TrueFirst places records whose flag is set before the others.
func TrueFirst[T any](flag func(T) bool) SortKey[T] {
	if flag == nil {
		return nil
	}
	return func(a, b T) int {
		fa, fb := flag(a), flag(b)
		switch {
		case fa == fb:
			return 0
		case fa:
			return -1
		default:
			return 1
		}
	}
}

// Sort returns a stably sorted copy of records. Records equal under every key
// keep their input order.
func Sort[T any](records []T, keys ...SortKey[T]) []T {
	out := slices.Clone(records)
	if out == nil {
		out = []T{}
	}
	if len(keys) == 0 {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		for _, key := range keys {
			if key == nil {
				continue
			}
			if c := key(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}
