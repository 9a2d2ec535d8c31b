// Package kind implements the kind compatibility algebra.
//
// A kind is a secondary tag on a quantity type that separates quantities of
// equal dimension which must not be mixed freely: torque vs. energy, an
// absolute temperature vs. a temperature interval, an angle vs. a plain
// ratio. Kinds compose through four relations (+, -, *, /). A Table answers
// "what is the kind of A op B?" or refuses.
//
// Built-in rules, always present and not overridable:
//
//	K * Unit = K      Unit * K = K
//	K / Unit = K      K / K    = Unit
//	Unit op Unit = Unit            (for every op)
//	Angle + Angle = Angle
//	Angle - Angle = Unit
//	Unit / Angle  = Angle          (only the Unit dividend)
//
// Anything else must be declared:
//
//	t.Declare(
//		kind.Add(thermo, kind.Unit, thermo), // absolute + interval, both orders
//		kind.SelfSub(thermo, kind.Unit),     // absolute - absolute = interval
//	)
//
// Combinations without a rule are rejected with ErrNoRule. That is what keeps
// two absolute temperatures from being added.
//
// Quantity types carry their kind as a zero-size Marker type parameter;
// UnitKind and AngleKind are the built-in markers.
package kind
