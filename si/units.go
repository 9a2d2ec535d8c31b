// SPDX-License-Identifier: MIT
// Package: si
//
// Purpose:
//   - SI units bound to their quantities, the commonly used prefixed members,
//     and a handful of accepted non-SI units.
//
// Notes:
//   - Factors are to the SI base unit of the quantity; offsets only appear on
//     Celsius and Fahrenheit.
//   - Mass prefixes apply to the gram, although the kilogram is the base.

package si

import (
	"math"

	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/unit"
)

// Dimensionless and angles.
var (
	Unitless = unit.Base[RatioDim, kind.UnitKind](unit.New("unitless", "1", "Pure number"))
	Percent  = unit.Define[RatioDim, kind.UnitKind](unit.New("percent", "%", "One hundredth"), 0.01)

	Radian = unit.Base[RatioDim, kind.AngleKind](unit.New("radian", "rad", "SI unit of plane angle"))
	Degree = unit.Define[RatioDim, kind.AngleKind](unit.New("degree", "°", "1/360 of a full turn"), math.Pi/180)
)

// Length.
var (
	Metre      = unit.Base[LengthDim, kind.UnitKind](unit.New("metre", "m", "SI base unit of length"))
	Kilometre  = Metre.Prefixed(unit.Kilo)
	Centimetre = Metre.Prefixed(unit.Centi)
	Millimetre = Metre.Prefixed(unit.Milli)
	Micrometre = Metre.Prefixed(unit.Micro)
	Nanometre  = Metre.Prefixed(unit.Nano)

	Inch = unit.Define[LengthDim, kind.UnitKind](unit.New("inch", "in", "International inch"), 0.0254)
	Foot = unit.Define[LengthDim, kind.UnitKind](unit.New("foot", "ft", "International foot"), 0.3048)
	Mile = unit.Define[LengthDim, kind.UnitKind](unit.New("mile", "mi", "International mile"), 1609.344)
)

// Mass.
var (
	Kilogram = unit.Base[MassDim, kind.UnitKind](
		unit.New("kilogram", "kg", "SI base unit of mass"),
		unit.WithPrefixRoot(unit.New("gram", "g", "One thousandth of a kilogram"), 1e-3),
	)
	Gram      = Kilogram.Prefixed(unit.NoPrefix)
	Milligram = Kilogram.Prefixed(unit.Milli)
	Microgram = Kilogram.Prefixed(unit.Micro)
	Tonne     = unit.Define[MassDim, kind.UnitKind](unit.New("tonne", "t", "Metric ton"), 1e3)
)

// Time.
var (
	Second      = unit.Base[TimeDim, kind.UnitKind](unit.New("second", "s", "SI base unit of time"))
	Millisecond = Second.Prefixed(unit.Milli)
	Microsecond = Second.Prefixed(unit.Micro)
	Nanosecond  = Second.Prefixed(unit.Nano)

	Minute = unit.Define[TimeDim, kind.UnitKind](unit.New("minute", "min", "60 seconds"), 60)
	Hour   = unit.Define[TimeDim, kind.UnitKind](unit.New("hour", "h", "3600 seconds"), 3600)
	Day    = unit.Define[TimeDim, kind.UnitKind](unit.New("day", "d", "86400 seconds"), 86400)
)

// Electric current, amount of substance, luminous intensity.
var (
	Ampere      = unit.Base[CurrentDim, kind.UnitKind](unit.New("ampere", "A", "SI base unit of electric current"))
	Milliampere = Ampere.Prefixed(unit.Milli)
	Microampere = Ampere.Prefixed(unit.Micro)

	Mole    = unit.Base[AmountDim, kind.UnitKind](unit.New("mole", "mol", "SI base unit of amount of substance"))
	Candela = unit.Base[IntensityDim, kind.UnitKind](unit.New("candela", "cd", "SI base unit of luminous intensity"))
)

var (
	kelvin     = unit.New("kelvin", "K", "SI base unit of thermodynamic temperature")
	celsius    = unit.New("celsius", "°C", "Degree Celsius")
	fahrenheit = unit.New("fahrenheit", "°F", "Degree Fahrenheit")
)

// Temperature. Kelvin, Celsius and Fahrenheit measure absolute temperatures;
// DeltaKelvin measures intervals and shares the kelvin descriptor.
var (
	Kelvin      = unit.Base[TemperatureDim, ThermodynamicTemperatureKind](kelvin)
	Millikelvin = Kelvin.Prefixed(unit.Milli)
	Celsius     = unit.Define[TemperatureDim, ThermodynamicTemperatureKind](celsius, 1, unit.WithOffset(273.15))
	Fahrenheit  = unit.Define[TemperatureDim, ThermodynamicTemperatureKind](fahrenheit, 5.0/9.0, unit.WithOffset(459.67))

	DeltaKelvin = unit.Base[TemperatureDim, kind.UnitKind](kelvin)
)

// Geometry and motion.
var (
	SquareMetre = unit.Base[AreaDim, kind.UnitKind](unit.New("square metre", "m²", "SI unit of area"))
	Hectare     = unit.Define[AreaDim, kind.UnitKind](unit.New("hectare", "ha", "10⁴ square metres"), 1e4)

	CubicMetre = unit.Base[VolumeDim, kind.UnitKind](unit.New("cubic metre", "m³", "SI unit of volume"))
	Litre      = unit.Define[VolumeDim, kind.UnitKind](unit.New("litre", "L", "One cubic decimetre"), 1e-3)
	Millilitre = Litre.Prefixed(unit.Milli)

	MetrePerSecond     = unit.Base[VelocityDim, kind.UnitKind](unit.New("metre per second", "m/s", "SI unit of velocity"))
	KilometrePerSecond = unit.Define[VelocityDim, kind.UnitKind](unit.New("kilometre per second", "km/s", ""), 1e3)
	KilometrePerHour   = unit.Define[VelocityDim, kind.UnitKind](unit.New("kilometre per hour", "km/h", ""), 1/3.6)
	MilePerSecond      = unit.Define[VelocityDim, kind.UnitKind](unit.New("mile per second", "mi/s", ""), 1609.344)
	MilePerHour        = unit.Define[VelocityDim, kind.UnitKind](unit.New("mile per hour", "mph", ""), 0.44704)

	MetrePerSecondSquared = unit.Base[AccelerationDim, kind.UnitKind](
		unit.New("metre per second squared", "m/s²", "SI unit of acceleration"))
)

// Mechanics.
var (
	Newton     = unit.Base[ForceDim, kind.UnitKind](unit.New("newton", "N", "SI unit of force"))
	Kilonewton = Newton.Prefixed(unit.Kilo)

	Pascal     = unit.Base[PressureDim, kind.UnitKind](unit.New("pascal", "Pa", "SI unit of pressure and stress"))
	Kilopascal = Pascal.Prefixed(unit.Kilo)
	Bar        = unit.Define[PressureDim, kind.UnitKind](unit.New("bar", "bar", "10⁵ pascal"), 1e5)

	Joule        = unit.Base[EnergyDim, kind.UnitKind](unit.New("joule", "J", "SI unit of energy"))
	Kilojoule    = Joule.Prefixed(unit.Kilo)
	WattHour     = unit.Define[EnergyDim, kind.UnitKind](unit.New("watt hour", "Wh", "3600 joules"), 3600)
	KilowattHour = unit.Define[EnergyDim, kind.UnitKind](unit.New("kilowatt hour", "kWh", "3.6 megajoules"), 3.6e6)
	Electronvolt = unit.Define[EnergyDim, kind.UnitKind](unit.New("electronvolt", "eV", "Energy of one elementary charge across one volt"), 1.602176634e-19)

	NewtonMetre = unit.Base[EnergyDim, TorqueKind](unit.New("newton metre", "N·m", "SI unit of torque"))

	Watt     = unit.Base[PowerDim, kind.UnitKind](unit.New("watt", "W", "SI unit of power"))
	Kilowatt = Watt.Prefixed(unit.Kilo)
	Megawatt = Watt.Prefixed(unit.Mega)
)

// Frequency.
var (
	Hertz     = unit.Base[FrequencyDim, kind.UnitKind](unit.New("hertz", "Hz", "SI unit of frequency"))
	Kilohertz = Hertz.Prefixed(unit.Kilo)
	Megahertz = Hertz.Prefixed(unit.Mega)
	Gigahertz = Hertz.Prefixed(unit.Giga)

	RadianPerSecond     = unit.Base[FrequencyDim, kind.AngleKind](unit.New("radian per second", "rad/s", "SI unit of angular velocity"))
	RevolutionPerMinute = unit.Define[FrequencyDim, kind.AngleKind](unit.New("revolution per minute", "rpm", ""), 2*math.Pi/60)
)

// Electromagnetism.
var (
	Coulomb    = unit.Base[ChargeDim, kind.UnitKind](unit.New("coulomb", "C", "SI unit of electric charge"))
	AmpereHour = unit.Define[ChargeDim, kind.UnitKind](unit.New("ampere hour", "Ah", "3600 coulombs"), 3600)

	Volt      = unit.Base[PotentialDim, kind.UnitKind](unit.New("volt", "V", "SI unit of electric potential"))
	Millivolt = Volt.Prefixed(unit.Milli)
	Kilovolt  = Volt.Prefixed(unit.Kilo)

	Farad      = unit.Base[CapacitanceDim, kind.UnitKind](unit.New("farad", "F", "SI unit of capacitance"))
	Microfarad = Farad.Prefixed(unit.Micro)
	Nanofarad  = Farad.Prefixed(unit.Nano)
	Picofarad  = Farad.Prefixed(unit.Pico)

	Ohm     = unit.Base[ResistanceDim, kind.UnitKind](unit.New("ohm", "Ω", "SI unit of electric resistance"))
	Kiloohm = Ohm.Prefixed(unit.Kilo)
	Megaohm = Ohm.Prefixed(unit.Mega)

	Siemens = unit.Base[ConductanceDim, kind.UnitKind](unit.New("siemens", "S", "SI unit of electric conductance"))
	Weber   = unit.Base[MagneticFluxDim, kind.UnitKind](unit.New("weber", "Wb", "SI unit of magnetic flux"))
	Tesla   = unit.Base[MagneticInductionDim, kind.UnitKind](unit.New("tesla", "T", "SI unit of magnetic flux density"))

	Henry      = unit.Base[InductanceDim, kind.UnitKind](unit.New("henry", "H", "SI unit of inductance"))
	Millihenry = Henry.Prefixed(unit.Milli)
	Microhenry = Henry.Prefixed(unit.Micro)

	FaradPerMetre = unit.Base[PermittivityDim, kind.UnitKind](unit.New("farad per metre", "F/m", "SI unit of permittivity"))
)
