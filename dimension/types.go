// SPDX-License-Identifier: MIT

package dimension

// Base indexes one of the seven SI base dimensions inside a Vector.
type Base int

// The seven base dimensions, in canonical (L, M, T, I, Θ, N, J) order.
const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseIntensity

	// NumBases is the length of a Vector.
	NumBases = 7
)

// MaxExponent bounds the absolute value of every exponent. Dimensions of real
// physical quantities stay far below it.
const MaxExponent = 64

var baseNames = [NumBases]string{"length", "mass", "time", "current", "temperature", "amount", "intensity"}

var baseSymbols = [NumBases]string{"L", "M", "T", "I", "Θ", "N", "J"}

var baseUnits = [NumBases]string{"m", "kg", "s", "A", "K", "mol", "cd"}

// String returns the lower-case base name, e.g. "length".
func (b Base) String() string {
	if b < 0 || b >= NumBases {
		return "unknown"
	}
	return baseNames[b]
}

// Symbol returns the ISO 80000 dimension symbol, e.g. "L" or "Θ".
func (b Base) Symbol() string {
	if b < 0 || b >= NumBases {
		return "?"
	}
	return baseSymbols[b]
}

// UnitSymbol returns the print name of the SI base unit, e.g. "kg".
func (b Base) UnitSymbol() string {
	if b < 0 || b >= NumBases {
		return "?"
	}
	return baseUnits[b]
}

// Bases returns the seven base dimensions in canonical order.
func Bases() []Base {
	return []Base{BaseLength, BaseMass, BaseTime, BaseCurrent, BaseTemperature, BaseAmount, BaseIntensity}
}

// Vector is the exponent vector (L, M, T, I, Θ, N, J) of a dimension.
// The zero value is the dimensionless vector. Vectors are comparable with ==.
type Vector [NumBases]int

// Marker is implemented by the zero-size types used as the dimension type
// parameter of a quantity.
type Marker interface {
	Dimension() Vector
}

// Dimensionless marks quantities with the all-zero vector (ratios, angles).
type Dimensionless struct{}

// Dimension implements Marker.
func (Dimensionless) Dimension() Vector { return Vector{} }

// Length marks L.
type Length struct{}

// Dimension implements Marker.
func (Length) Dimension() Vector { return Of(BaseLength) }

// Mass marks M.
type Mass struct{}

// Dimension implements Marker.
func (Mass) Dimension() Vector { return Of(BaseMass) }

// Time marks T.
type Time struct{}

// Dimension implements Marker.
func (Time) Dimension() Vector { return Of(BaseTime) }

// Current marks I (electric current).
type Current struct{}

// Dimension implements Marker.
func (Current) Dimension() Vector { return Of(BaseCurrent) }

// Temperature marks Θ (thermodynamic temperature).
type Temperature struct{}

// Dimension implements Marker.
func (Temperature) Dimension() Vector { return Of(BaseTemperature) }

// Amount marks N (amount of substance).
type Amount struct{}

// Dimension implements Marker.
func (Amount) Dimension() Vector { return Of(BaseAmount) }

// Intensity marks J (luminous intensity).
type Intensity struct{}

// Dimension implements Marker.
func (Intensity) Dimension() Vector { return Of(BaseIntensity) }
