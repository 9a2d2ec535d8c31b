// SPDX-License-Identifier: MIT

package value

import "math/cmplx"

// Re returns the real part of c as R.
func Re[R Real, C Complex](c C) R { return R(real(complex128(c))) }

// Im returns the imaginary part of c as R.
func Im[R Real, C Complex](c C) R { return R(imag(complex128(c))) }

// Norm returns |c| as R.
func Norm[R Real, C Complex](c C) R { return R(cmplx.Abs(complex128(c))) }

// Arg returns the phase of c in radians as R.
func Arg[R Real, C Complex](c C) R { return R(cmplx.Phase(complex128(c))) }

// Promote widens a real into a complex with zero imaginary part.
func Promote[C Complex, R Real](x R) C { return C(complex(float64(x), 0)) }
