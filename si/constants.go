// SPDX-License-Identifier: MIT

package si

import (
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/quantity"
)

// Physical constants (CODATA 2022; exact where the SI defines them).
var (
	// VacuumPermittivity is ε₀.
	VacuumPermittivity = quantity.FromBase[PermittivityDim, kind.UnitKind](8.8541878188e-12)

	// SpeedOfLight is c, exact.
	SpeedOfLight = quantity.FromBase[VelocityDim, kind.UnitKind](299792458.0)

	// ElementaryCharge is e, exact.
	ElementaryCharge = quantity.FromBase[ChargeDim, kind.UnitKind](1.602176634e-19)

	// StandardGravity is g₀, exact by convention.
	StandardGravity = quantity.FromBase[AccelerationDim, kind.UnitKind](9.80665)
)

// Constant describes a physical constant for listings.
type Constant struct {
	Name     string
	Symbol   string
	Quantity string
	Value    float64
	Unit     string
}

// Constants lists the constants above.
func Constants() []Constant {
	return []Constant{
		{"vacuum permittivity", "ε₀", "ElectricPermittivity", VacuumPermittivity.Base(), FaradPerMetre.PrintName()},
		{"speed of light", "c", "Velocity", SpeedOfLight.Base(), MetrePerSecond.PrintName()},
		{"elementary charge", "e", "ElectricCharge", ElementaryCharge.Base(), Coulomb.PrintName()},
		{"standard gravity", "g₀", "Acceleration", StandardGravity.Base(), MetrePerSecondSquared.PrintName()},
	}
}
