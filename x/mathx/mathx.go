// Package mathx holds small generic numeric helpers shared by the drivers
// and the panel.
package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. Bounds given in either order are accepted.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	lo, hi = order(lo, hi)
	return min(max(v, lo), hi)
}

// Between reports whether v lies in the closed range [lo, hi], bounds in
// either order.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	lo, hi = order(lo, hi)
	return lo <= v && v <= hi
}

// RoundHalfAway rounds f to the nearest integer, halves away from zero
// (23.45 -> 23, 2.5 -> 3, -2.5 -> -3). The result must fit in I.
func RoundHalfAway[I constraints.Signed, F constraints.Float](f F) I {
	if f < 0 {
		return I(f - 0.5)
	}
	return I(f + 0.5)
}

func order[T constraints.Ordered](a, b T) (T, T) {
	if b < a {
		return b, a
	}
	return a, b
}
