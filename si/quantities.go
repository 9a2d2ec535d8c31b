// SPDX-License-Identifier: MIT

package si

import (
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/value"
)

// Quantity aliases. Each quantity comes generic over the scalar and in four
// fixed widths: 32 and 64 bit real, 64 and 128 bit complex.

// Ratio is a dimensionless ratio.
type Ratio[T value.Scalar] = quantity.Quantity[T, RatioDim, kind.UnitKind]

type (
	Ratio32   = Ratio[float32]
	Ratio64   = Ratio[float64]
	RatioC64  = Ratio[complex64]
	RatioC128 = Ratio[complex128]
)

// Angle is a plane angle.
type Angle[T value.Scalar] = quantity.Quantity[T, RatioDim, kind.AngleKind]

type (
	Angle32   = Angle[float32]
	Angle64   = Angle[float64]
	AngleC64  = Angle[complex64]
	AngleC128 = Angle[complex128]
)

// Length is a length.
type Length[T value.Scalar] = quantity.Quantity[T, LengthDim, kind.UnitKind]

type (
	Length32   = Length[float32]
	Length64   = Length[float64]
	LengthC64  = Length[complex64]
	LengthC128 = Length[complex128]
)

// Mass is a mass.
type Mass[T value.Scalar] = quantity.Quantity[T, MassDim, kind.UnitKind]

type (
	Mass32   = Mass[float32]
	Mass64   = Mass[float64]
	MassC64  = Mass[complex64]
	MassC128 = Mass[complex128]
)

// Time is a duration.
type Time[T value.Scalar] = quantity.Quantity[T, TimeDim, kind.UnitKind]

type (
	Time32   = Time[float32]
	Time64   = Time[float64]
	TimeC64  = Time[complex64]
	TimeC128 = Time[complex128]
)

// ElectricCurrent is an electric current.
type ElectricCurrent[T value.Scalar] = quantity.Quantity[T, CurrentDim, kind.UnitKind]

type (
	ElectricCurrent32   = ElectricCurrent[float32]
	ElectricCurrent64   = ElectricCurrent[float64]
	ElectricCurrentC64  = ElectricCurrent[complex64]
	ElectricCurrentC128 = ElectricCurrent[complex128]
)

// ThermodynamicTemperature is an absolute temperature.
type ThermodynamicTemperature[T value.Scalar] = quantity.Quantity[T, TemperatureDim, ThermodynamicTemperatureKind]

type (
	ThermodynamicTemperature32   = ThermodynamicTemperature[float32]
	ThermodynamicTemperature64   = ThermodynamicTemperature[float64]
	ThermodynamicTemperatureC64  = ThermodynamicTemperature[complex64]
	ThermodynamicTemperatureC128 = ThermodynamicTemperature[complex128]
)

// TemperatureInterval is a temperature difference.
type TemperatureInterval[T value.Scalar] = quantity.Quantity[T, TemperatureDim, kind.UnitKind]

type (
	TemperatureInterval32   = TemperatureInterval[float32]
	TemperatureInterval64   = TemperatureInterval[float64]
	TemperatureIntervalC64  = TemperatureInterval[complex64]
	TemperatureIntervalC128 = TemperatureInterval[complex128]
)

// Amount is an amount of substance.
type Amount[T value.Scalar] = quantity.Quantity[T, AmountDim, kind.UnitKind]

type (
	Amount32   = Amount[float32]
	Amount64   = Amount[float64]
	AmountC64  = Amount[complex64]
	AmountC128 = Amount[complex128]
)

// LuminousIntensity is a luminous intensity.
type LuminousIntensity[T value.Scalar] = quantity.Quantity[T, IntensityDim, kind.UnitKind]

type (
	LuminousIntensity32   = LuminousIntensity[float32]
	LuminousIntensity64   = LuminousIntensity[float64]
	LuminousIntensityC64  = LuminousIntensity[complex64]
	LuminousIntensityC128 = LuminousIntensity[complex128]
)

// Area is an area.
type Area[T value.Scalar] = quantity.Quantity[T, AreaDim, kind.UnitKind]

type (
	Area32   = Area[float32]
	Area64   = Area[float64]
	AreaC64  = Area[complex64]
	AreaC128 = Area[complex128]
)

// Volume is a volume.
type Volume[T value.Scalar] = quantity.Quantity[T, VolumeDim, kind.UnitKind]

type (
	Volume32   = Volume[float32]
	Volume64   = Volume[float64]
	VolumeC64  = Volume[complex64]
	VolumeC128 = Volume[complex128]
)

// Velocity is a velocity.
type Velocity[T value.Scalar] = quantity.Quantity[T, VelocityDim, kind.UnitKind]

type (
	Velocity32   = Velocity[float32]
	Velocity64   = Velocity[float64]
	VelocityC64  = Velocity[complex64]
	VelocityC128 = Velocity[complex128]
)

// Acceleration is an acceleration.
type Acceleration[T value.Scalar] = quantity.Quantity[T, AccelerationDim, kind.UnitKind]

type (
	Acceleration32   = Acceleration[float32]
	Acceleration64   = Acceleration[float64]
	AccelerationC64  = Acceleration[complex64]
	AccelerationC128 = Acceleration[complex128]
)

// Force is a force.
type Force[T value.Scalar] = quantity.Quantity[T, ForceDim, kind.UnitKind]

type (
	Force32   = Force[float32]
	Force64   = Force[float64]
	ForceC64  = Force[complex64]
	ForceC128 = Force[complex128]
)

// Pressure is a pressure or stress.
type Pressure[T value.Scalar] = quantity.Quantity[T, PressureDim, kind.UnitKind]

type (
	Pressure32   = Pressure[float32]
	Pressure64   = Pressure[float64]
	PressureC64  = Pressure[complex64]
	PressureC128 = Pressure[complex128]
)

// Energy is an energy.
type Energy[T value.Scalar] = quantity.Quantity[T, EnergyDim, kind.UnitKind]

type (
	Energy32   = Energy[float32]
	Energy64   = Energy[float64]
	EnergyC64  = Energy[complex64]
	EnergyC128 = Energy[complex128]
)

// Torque is a torque.
type Torque[T value.Scalar] = quantity.Quantity[T, EnergyDim, TorqueKind]

type (
	Torque32   = Torque[float32]
	Torque64   = Torque[float64]
	TorqueC64  = Torque[complex64]
	TorqueC128 = Torque[complex128]
)

// Power is a power.
type Power[T value.Scalar] = quantity.Quantity[T, PowerDim, kind.UnitKind]

type (
	Power32   = Power[float32]
	Power64   = Power[float64]
	PowerC64  = Power[complex64]
	PowerC128 = Power[complex128]
)

// Frequency is a frequency.
type Frequency[T value.Scalar] = quantity.Quantity[T, FrequencyDim, kind.UnitKind]

type (
	Frequency32   = Frequency[float32]
	Frequency64   = Frequency[float64]
	FrequencyC64  = Frequency[complex64]
	FrequencyC128 = Frequency[complex128]
)

// AngularVelocity is an angular velocity.
type AngularVelocity[T value.Scalar] = quantity.Quantity[T, FrequencyDim, kind.AngleKind]

type (
	AngularVelocity32   = AngularVelocity[float32]
	AngularVelocity64   = AngularVelocity[float64]
	AngularVelocityC64  = AngularVelocity[complex64]
	AngularVelocityC128 = AngularVelocity[complex128]
)

// ElectricCharge is an electric charge.
type ElectricCharge[T value.Scalar] = quantity.Quantity[T, ChargeDim, kind.UnitKind]

type (
	ElectricCharge32   = ElectricCharge[float32]
	ElectricCharge64   = ElectricCharge[float64]
	ElectricChargeC64  = ElectricCharge[complex64]
	ElectricChargeC128 = ElectricCharge[complex128]
)

// ElectricPotential is an electric potential.
type ElectricPotential[T value.Scalar] = quantity.Quantity[T, PotentialDim, kind.UnitKind]

type (
	ElectricPotential32   = ElectricPotential[float32]
	ElectricPotential64   = ElectricPotential[float64]
	ElectricPotentialC64  = ElectricPotential[complex64]
	ElectricPotentialC128 = ElectricPotential[complex128]
)

// Capacitance is a capacitance.
type Capacitance[T value.Scalar] = quantity.Quantity[T, CapacitanceDim, kind.UnitKind]

type (
	Capacitance32   = Capacitance[float32]
	Capacitance64   = Capacitance[float64]
	CapacitanceC64  = Capacitance[complex64]
	CapacitanceC128 = Capacitance[complex128]
)

// ElectricResistance is an electric resistance.
type ElectricResistance[T value.Scalar] = quantity.Quantity[T, ResistanceDim, kind.UnitKind]

type (
	ElectricResistance32   = ElectricResistance[float32]
	ElectricResistance64   = ElectricResistance[float64]
	ElectricResistanceC64  = ElectricResistance[complex64]
	ElectricResistanceC128 = ElectricResistance[complex128]
)

// ElectricConductance is an electric conductance.
type ElectricConductance[T value.Scalar] = quantity.Quantity[T, ConductanceDim, kind.UnitKind]

type (
	ElectricConductance32   = ElectricConductance[float32]
	ElectricConductance64   = ElectricConductance[float64]
	ElectricConductanceC64  = ElectricConductance[complex64]
	ElectricConductanceC128 = ElectricConductance[complex128]
)

// MagneticFlux is a magnetic flux.
type MagneticFlux[T value.Scalar] = quantity.Quantity[T, MagneticFluxDim, kind.UnitKind]

type (
	MagneticFlux32   = MagneticFlux[float32]
	MagneticFlux64   = MagneticFlux[float64]
	MagneticFluxC64  = MagneticFlux[complex64]
	MagneticFluxC128 = MagneticFlux[complex128]
)

// MagneticInduction is a magnetic flux density.
type MagneticInduction[T value.Scalar] = quantity.Quantity[T, MagneticInductionDim, kind.UnitKind]

type (
	MagneticInduction32   = MagneticInduction[float32]
	MagneticInduction64   = MagneticInduction[float64]
	MagneticInductionC64  = MagneticInduction[complex64]
	MagneticInductionC128 = MagneticInduction[complex128]
)

// Inductance is an inductance.
type Inductance[T value.Scalar] = quantity.Quantity[T, InductanceDim, kind.UnitKind]

type (
	Inductance32   = Inductance[float32]
	Inductance64   = Inductance[float64]
	InductanceC64  = Inductance[complex64]
	InductanceC128 = Inductance[complex128]
)

// ElectricPermittivity is an electric permittivity.
type ElectricPermittivity[T value.Scalar] = quantity.Quantity[T, PermittivityDim, kind.UnitKind]

type (
	ElectricPermittivity32   = ElectricPermittivity[float32]
	ElectricPermittivity64   = ElectricPermittivity[float64]
	ElectricPermittivityC64  = ElectricPermittivity[complex64]
	ElectricPermittivityC128 = ElectricPermittivity[complex128]
)
