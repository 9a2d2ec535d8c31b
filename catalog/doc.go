// Package catalog reads and writes declarative unit catalogues and applies
// them to a registry and a kind table.
//
// A catalogue has three sections, applied in order:
//
//   - rules: kind rules ("+", "-", "*", "/") declared atomically on the table;
//   - quantities: name, optional kind, a dimension given as base exponents
//     or derived from quantities already known, a base unit and an optional
//     prefix family;
//   - units: extra units (factor, optional offset) of existing quantities.
//
// TOML, YAML and JSON are supported; Load picks the format from the file
// extension.
//
//	[[quantities]]
//	name = "Jerk"
//	derive = [{ quantity = "Length", power = 1 }, { quantity = "Time", power = -3 }]
//	base = { name = "metre per second cubed", symbol = "m/s³" }
//
//	[[units]]
//	quantity = "Length"
//	name = "furlong"
//	symbol = "fur"
//	factor = 201.168
//
// Validate checks a catalogue without touching any registry; Apply runs it
// first so a malformed catalogue changes nothing.
package catalog
