// SPDX-License-Identifier: MIT

package si

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/unit"
)

type step func(*registry.Registry) error

// define declares a quantity with its base unit, the full prefix families of
// the given roots, and extra units.
func define[D dimension.Marker, K kind.Marker](name, doc string, base unit.Of[D, K], families []unit.Of[D, K], extra ...unit.Of[D, K]) step {
	return func(reg *registry.Registry) error {
		if err := registry.Define(reg, name, doc, base); err != nil {
			return err
		}
		for _, root := range families {
			if err := registry.RegisterFamily(reg, name, root); err != nil {
				return err
			}
		}

		return registry.Register(reg, name, extra...)
	}
}

// family is a readability helper for define.
func family[D dimension.Marker, K kind.Marker](roots ...unit.Of[D, K]) []unit.Of[D, K] { return roots }

func steps() []step {
	return []step{
		define("Ratio", "Dimensionless ratio", Unitless, nil, Percent),
		define("Angle", "Plane angle", Radian, nil, Degree),
		define("Length", "Length", Metre, family(Metre), Inch, Foot, Mile),
		define("Mass", "Mass", Kilogram, family(Kilogram), Tonne),
		define("Time", "Duration", Second, family(Second), Minute, Hour, Day),
		define("ElectricCurrent", "Electric current", Ampere, family(Ampere)),
		define("ThermodynamicTemperature", "Absolute temperature", Kelvin, family(Kelvin), Celsius, Fahrenheit),
		define("TemperatureInterval", "Temperature difference", DeltaKelvin, family(DeltaKelvin)),
		define("Amount", "Amount of substance", Mole, family(Mole)),
		define("LuminousIntensity", "Luminous intensity", Candela, family(Candela)),
		define("Area", "Area", SquareMetre, nil, Hectare),
		define("Volume", "Volume", CubicMetre, family(Litre)),
		define("Velocity", "Velocity", MetrePerSecond, nil,
			KilometrePerSecond, KilometrePerHour, MilePerSecond, MilePerHour),
		define("Acceleration", "Acceleration", MetrePerSecondSquared, nil),
		define("Force", "Force", Newton, family(Newton)),
		define("Pressure", "Pressure and stress", Pascal, family(Pascal), Bar),
		define("Energy", "Energy, work, heat", Joule, family(Joule), WattHour, KilowattHour, Electronvolt),
		define("Torque", "Torque (moment of force)", NewtonMetre, nil),
		define("Power", "Power", Watt, family(Watt)),
		define("Frequency", "Frequency", Hertz, family(Hertz)),
		define("AngularVelocity", "Angular velocity", RadianPerSecond, nil, RevolutionPerMinute),
		define("ElectricCharge", "Electric charge", Coulomb, family(Coulomb), AmpereHour),
		define("ElectricPotential", "Electric potential", Volt, family(Volt)),
		define("Capacitance", "Capacitance", Farad, family(Farad)),
		define("ElectricResistance", "Electric resistance", Ohm, family(Ohm)),
		define("ElectricConductance", "Electric conductance", Siemens, family(Siemens)),
		define("MagneticFlux", "Magnetic flux", Weber, family(Weber)),
		define("MagneticInduction", "Magnetic flux density", Tesla, family(Tesla)),
		define("Inductance", "Inductance", Henry, family(Henry)),
		define("ElectricPermittivity", "Electric permittivity", FaradPerMetre, nil),
	}
}

// Register defines every SI quantity and unit in reg. It is idempotent.
func Register(reg *registry.Registry) error {
	for _, s := range steps() {
		if err := s(reg); err != nil {
			return errors.Wrap(err, "si")
		}
	}

	return nil
}

func init() {
	kinds()
	if err := Register(registry.Default()); err != nil {
		panic(err)
	}
}
