// SPDX-License-Identifier: MIT

package si

import "github.com/katalvlaran/lvunits/kind"

// Kind IDs declared by this package.
const (
	ThermodynamicTemperatureID kind.ID = "ThermodynamicTemperature"
	TorqueID                   kind.ID = "Torque"
)

// ThermodynamicTemperatureKind marks absolute temperatures.
type ThermodynamicTemperatureKind struct{}

// Kind implements kind.Marker.
func (ThermodynamicTemperatureKind) Kind() kind.ID { return ThermodynamicTemperatureID }

// TorqueKind separates torque from energy, which shares its dimension.
type TorqueKind struct{}

// Kind implements kind.Marker.
func (TorqueKind) Kind() kind.ID { return TorqueID }

// KindRules returns the rules of the SI kinds:
//
//	T + Unit = T, Unit + T = T    T - T = Unit    T - Unit = T
//	Torque ± Torque = Torque
func KindRules() []kind.Rule {
	return []kind.Rule{
		kind.Add(ThermodynamicTemperatureID, kind.Unit, ThermodynamicTemperatureID),
		kind.SelfSub(ThermodynamicTemperatureID, kind.Unit),
		kind.Sub(ThermodynamicTemperatureID, kind.Unit, ThermodynamicTemperatureID),
		kind.SelfAdd(TorqueID, TorqueID),
		kind.SelfSub(TorqueID, TorqueID),
	}
}

// DeclareKinds adds KindRules to t.
func DeclareKinds(t *kind.Table) error {
	return t.Declare(KindRules()...)
}
