// SPDX-License-Identifier: MIT

package dimension

import (
	"strconv"
	"strings"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

// superscript renders e as a superscript; exponent 1 renders as "".
func superscript(e int) string {
	if e == 1 {
		return ""
	}
	var sb strings.Builder
	for _, r := range strconv.Itoa(e) {
		sb.WriteRune(superscripts[r])
	}

	return sb.String()
}

// join renders the non-zero exponents with the given per-base symbols.
func (v Vector) join(symbol func(Base) string) string {
	parts := make([]string, 0, NumBases)
	for _, b := range Bases() {
		if e := v[b]; e != 0 {
			parts = append(parts, symbol(b)+superscript(e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "·")
}

// String renders the dimensional formula, e.g. "L·T⁻¹"; "1" when dimensionless.
func (v Vector) String() string {
	return v.join(Base.Symbol)
}

// BaseUnits renders v as a product of SI base units, e.g. "m²·kg·s⁻²".
func (v Vector) BaseUnits() string {
	return v.join(Base.UnitSymbol)
}
