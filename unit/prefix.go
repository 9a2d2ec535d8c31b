// SPDX-License-Identifier: MIT

package unit

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Prefix is a decimal multiplier 10^Exp with its name and symbol.
type Prefix struct {
	Name   string
	Symbol string
	Exp    int
}

// Decimal prefixes. Deca and hecto are not provided.
var (
	Quecto = Prefix{"quecto", "q", -30}
	Ronto  = Prefix{"ronto", "r", -27}
	Yocto  = Prefix{"yocto", "y", -24}
	Zepto  = Prefix{"zepto", "z", -21}
	Atto   = Prefix{"atto", "a", -18}
	Femto  = Prefix{"femto", "f", -15}
	Pico   = Prefix{"pico", "p", -12}
	Nano   = Prefix{"nano", "n", -9}
	Micro  = Prefix{"micro", "µ", -6}
	Milli  = Prefix{"milli", "m", -3}
	Centi  = Prefix{"centi", "c", -2}
	Deci   = Prefix{"deci", "d", -1}
	Kilo   = Prefix{"kilo", "k", 3}
	Mega   = Prefix{"mega", "M", 6}
	Giga   = Prefix{"giga", "G", 9}
	Tera   = Prefix{"tera", "T", 12}
	Peta   = Prefix{"peta", "P", 15}
	Exa    = Prefix{"exa", "E", 18}
	Zetta  = Prefix{"zetta", "Z", 21}
	Yotta  = Prefix{"yotta", "Y", 24}
	Ronna  = Prefix{"ronna", "R", 27}
	Quetta = Prefix{"quetta", "Q", 30}

	// NoPrefix leaves the root unit unchanged.
	NoPrefix = Prefix{}
)

var all = []Prefix{
	Quecto, Ronto, Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci,
	NoPrefix,
	Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta, Ronna, Quetta,
}

// Prefixes returns the 23 family members in ascending order, NoPrefix included.
func Prefixes() []Prefix {
	out := make([]Prefix, len(all))
	copy(out, all)

	return out
}

// ParsePrefix finds a prefix by name ("kilo") or symbol ("k"). The empty
// string yields NoPrefix; "u" is accepted for micro.
func ParsePrefix(s string) (Prefix, error) {
	if s == "u" {
		return Micro, nil
	}
	for _, p := range all {
		if p.Name == s || p.Symbol == s {
			return p, nil
		}
	}

	return Prefix{}, errors.Wrapf(ErrUnknownPrefix, "%q", s)
}

// IsNone reports whether p is NoPrefix.
func (p Prefix) IsNone() bool { return p == NoPrefix }

// Scale multiplies f by 10^Exp. Negative exponents divide by 10^-Exp so that
// milli and friends round the same way as a literal division.
func (p Prefix) Scale(f float64) float64 {
	switch {
	case p.Exp > 0:
		return f * math.Pow10(p.Exp)
	case p.Exp < 0:
		return f / math.Pow10(-p.Exp)
	}

	return f
}

// Factor returns 10^Exp.
func (p Prefix) Factor() float64 { return p.Scale(1) }

// Apply prefixes an untyped unit: names are concatenated, the factor is
// scaled and the offset kept.
func (p Prefix) Apply(u Unit, c Conversion) (Unit, Conversion) {
	if p.IsNone() {
		return u, c
	}
	pu := Unit{
		long:  p.Name + u.long,
		print: p.Symbol + u.print,
		doc:   fmt.Sprintf("%s (10^%d %s)", p.Name+u.long, p.Exp, u.long),
	}

	return pu, Conversion{Factor: p.Scale(c.Factor), Offset: c.Offset}
}
