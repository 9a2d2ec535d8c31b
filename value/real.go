// SPDX-License-Identifier: MIT

package value

import "math"

// Floor rounds toward -Inf.
func Floor[T Real](x T) T { return T(math.Floor(float64(x))) }

// Ceil rounds toward +Inf.
func Ceil[T Real](x T) T { return T(math.Ceil(float64(x))) }

// Round rounds half away from zero.
func Round[T Real](x T) T { return T(math.Round(float64(x))) }

// Trunc drops the fractional part.
func Trunc[T Real](x T) T { return T(math.Trunc(float64(x))) }

// Fract returns the fractional part, x - Trunc(x).
func Fract[T Real](x T) T { return x - Trunc(x) }

// Abs returns |x|.
func Abs[T Real](x T) T { return T(math.Abs(float64(x))) }

// Min returns the smaller of x and y; NaN propagates.
func Min[T Real](x, y T) T { return T(math.Min(float64(x), float64(y))) }

// Max returns the larger of x and y; NaN propagates.
func Max[T Real](x, y T) T { return T(math.Max(float64(x), float64(y))) }

// Clamp restricts x to [lo, hi]. A NaN x is returned unchanged.
func Clamp[T Real](x, lo, hi T) T {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}

	return x
}

// Atan2 returns the angle of the point (x, y) in radians.
func Atan2[T Real](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// IsSignNegative reports whether the sign bit of x is set.
func IsSignNegative[T Real](x T) bool { return math.Signbit(float64(x)) }
