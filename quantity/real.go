// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/value"
)

// Rounding and comparison helpers for real quantities. They act on the base
// magnitude: Round of 1.6 km is still 1600 m, not 2 km.

// Floor rounds the base magnitude down.
func Floor[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Floor(q.v)}
}

// Ceil rounds the base magnitude up.
func Ceil[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Ceil(q.v)}
}

// Round rounds the base magnitude half away from zero.
func Round[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Round(q.v)}
}

// Fract returns the fractional part of the base magnitude.
func Fract[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Fract(q.v)}
}

// Abs returns |q|.
func Abs[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Abs(q.v)}
}

// Min returns the smaller of a and b.
func Min[T value.Real, D dimension.Marker, K kind.Marker](a, b Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Min(a.v, b.v)}
}

// Max returns the larger of a and b.
func Max[T value.Real, D dimension.Marker, K kind.Marker](a, b Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Max(a.v, b.v)}
}

// Clamp limits q to [lo, hi].
func Clamp[T value.Real, D dimension.Marker, K kind.Marker](q, lo, hi Quantity[T, D, K]) Quantity[T, D, K] {
	return Quantity[T, D, K]{v: value.Clamp(q.v, lo.v, hi.v)}
}

// Less reports a < b.
func Less[T value.Real, D dimension.Marker, K kind.Marker](a, b Quantity[T, D, K]) bool {
	return a.v < b.v
}

// IsSignNegative reports whether the sign bit of the magnitude is set.
func IsSignNegative[T value.Real, D dimension.Marker, K kind.Marker](q Quantity[T, D, K]) bool {
	return value.IsSignNegative(q.v)
}
