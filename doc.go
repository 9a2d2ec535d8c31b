// Package lvunits is a library of physical quantities whose dimension and
// kind are checked by the Go type system.
//
// A quantity carries a scalar (float32, float64, complex64 or complex128)
// expressed in SI base units, plus two phantom type parameters: its
// dimension (exponents of length, mass, time, current, temperature, amount
// and intensity) and its kind (Unit, Angle, ThermodynamicTemperature, ...).
// Adding a length to a time does not compile; multiplying two lengths gives
// an area. Kind rules decide which same-dimension combinations make sense:
// two absolute temperatures subtract to an interval but do not add.
//
// Layout:
//
//	dimension/  dimension vectors, base markers, formatting
//	value/      the scalar constraint and real/complex helpers
//	kind/       kind identities and the rule table
//	unit/       unit descriptors, affine conversions, SI prefixes
//	quantity/   Quantity, checked operators, math, encoding
//	si/         SI dimensions, kinds, units, quantity aliases, constants
//	registry/   runtime lookup and conversion of units by name
//	catalog/    TOML/YAML/JSON unit catalogues
//	logger/     zap logger for the CLI
//	cmd/lvunits command-line converter
//
// Quick example:
//
//	d := quantity.New(25.0, si.Kilometre)
//	t := quantity.New(1.0, si.Hour)
//	v := si.VelocityOf.Apply(d, t)
//	fmt.Printf("%.1v\n", v.Display(si.KilometrePerHour)) // 25.0 km/h
//
// Operators are built once with quantity.NewAdd, NewMul, NewPow, ... which
// validate dimensions and kinds and return an op whose Apply cannot fail.
package lvunits
