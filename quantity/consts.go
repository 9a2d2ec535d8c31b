// SPDX-License-Identifier: MIT

package quantity

import (
	"math"

	"github.com/katalvlaran/lvunits/value"
)

// Zero returns 0 base units of Q.
func Zero[Q Of[T], T value.Scalar]() Q { return wrap[Q, T](value.Zero[T]()) }

// One returns 1 base unit of Q.
func One[Q Of[T], T value.Scalar]() Q { return wrap[Q, T](value.One[T]()) }

// Inf returns +∞ base units of Q.
func Inf[Q Of[T], T value.Scalar]() Q { return wrap[Q, T](value.FromReal[T](math.Inf(1))) }

// NaN returns a NaN magnitude of Q.
func NaN[Q Of[T], T value.Scalar]() Q { return wrap[Q, T](value.FromReal[T](math.NaN())) }

// I returns the imaginary unit in base units of a complex Q.
func I[Q Of[C], C value.Complex]() Q { return wrap[Q, C](value.I[C]()) }

// J is I under the electrical engineering name.
func J[Q Of[C], C value.Complex]() Q { return I[Q, C]() }
