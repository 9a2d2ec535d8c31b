// Package registry is a runtime table of quantities and their units.
//
// The quantity package checks everything at compile or construction time and
// never needs a lookup. The registry serves the other side: input that names
// units as strings (a CLI argument, a catalogue file, a config value). It maps
// unit identifiers to (quantity, dimension, kind, factor, offset) and converts
// numbers between units that share a dimension and kind.
//
//	reg := registry.New()
//	_ = reg.DefineQuantity(registry.QuantitySpec{Name: "Length", Dimension: dim, Kind: kind.Unit, BaseUnit: metre})
//	_ = registry.RegisterFamily(reg, "Length", si.Metre)
//	v, _ := reg.Convert(1500, "m", "km") // 1.5
//
// Lookups accept the print name exactly ("mm", "Mm") or the long name in any
// case ("Millimetre"). A unit may belong to several quantities (the kelvin
// measures both absolute temperatures and intervals); conversions that could
// mean different things are rejected with ErrAmbiguousUnit unless InQuantity
// names the quantity.
//
// A Registry is safe for concurrent use. Default returns the process-wide
// instance the si package populates at init.
package registry
