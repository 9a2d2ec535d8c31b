// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvunits/value"
)

// engineering prefix symbols from 10⁻³⁰ to 10³⁰ in steps of 10³.
var engineering = [...]string{
	"q", "r", "y", "z", "a", "f", "p", "n", "µ", "m", "",
	"k", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q",
}

const zeroAt = len(engineering) / 2

// FindPrefix rescales x by the largest power of 10³ that keeps its magnitude at
// or above 1, clamped to quecto…quetta, and returns the matching symbol.
// Zero and non-finite values are returned unchanged with no prefix.
func FindPrefix[T value.Scalar](x T) (T, string) {
	mag := value.Magnitude(x)
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return x, ""
	}

	id := int(math.Floor(math.Log10(mag) / 3))
	// Log10 is not exact at powers of ten; nudge the step back into place.
	if id > -zeroAt && mag < math.Pow10(3*id) {
		id--
	} else if id < zeroAt && mag >= math.Pow10(3*(id+1)) {
		id++
	}
	id = max(-zeroAt, min(zeroAt, id))

	return x / value.FromReal[T](math.Pow10(3*id)), engineering[id+zeroAt]
}

// Formatted is a magnitude paired with a print name. It renders as
// "<magnitude> <symbol>". %v and %s use the default magnitude format, or
// fixed decimals when a precision is given (%.2v); %e, %f and %g apply to the
// magnitude. A width pads the whole string, left-aligned with the '-' flag.
type Formatted[T value.Scalar] struct {
	Magnitude T
	Symbol    string
}

// Format implements fmt.Formatter.
func (f Formatted[T]) Format(s fmt.State, verb rune) {
	var body string
	p, hasPrec := s.Precision()
	switch verb {
	case 'v', 's':
		if hasPrec {
			body = fmt.Sprintf("%.*f %s", p, f.Magnitude, f.Symbol)
		} else {
			body = f.String()
		}
	case 'e', 'E', 'f', 'F', 'g', 'G':
		spec := "%"
		if s.Flag('+') {
			spec += "+"
		}
		if hasPrec {
			spec += fmt.Sprintf(".%d", p)
		}
		body = fmt.Sprintf(spec+string(verb)+" %s", f.Magnitude, f.Symbol)
	default:
		fmt.Fprintf(s, "%%!%c(unit.Formatted=%s)", verb, f.String())
		return
	}

	if w, ok := s.Width(); ok {
		if pad := w - utf8.RuneCountInString(body); pad > 0 {
			if s.Flag('-') {
				body += strings.Repeat(" ", pad)
			} else {
				body = strings.Repeat(" ", pad) + body
			}
		}
	}
	_, _ = io.WriteString(s, body)
}

// String renders f with the default magnitude format.
func (f Formatted[T]) String() string {
	return fmt.Sprintf("%v %s", f.Magnitude, f.Symbol)
}

// Display formats x in u.
func Display[T value.Scalar](x T, u Unit) Formatted[T] {
	return Formatted[T]{Magnitude: x, Symbol: u.print}
}

// Auto picks a prefix for a base-unit value and prepends it to the symbol of u,
// e.g. 0.0042 with "A" renders as "4.2 mA". Offsets are not considered.
func Auto[T value.Scalar](x T, u Unit) Formatted[T] {
	v, p := FindPrefix(x)
	return Formatted[T]{Magnitude: v, Symbol: p + u.print}
}
