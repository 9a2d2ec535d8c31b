// SPDX-License-Identifier: MIT

package si

import "github.com/katalvlaran/lvunits/dimension"

// Base dimensions, re-exported under SI names.
type (
	RatioDim       = dimension.Dimensionless
	LengthDim      = dimension.Length
	MassDim        = dimension.Mass
	TimeDim        = dimension.Time
	CurrentDim     = dimension.Current
	TemperatureDim = dimension.Temperature
	AmountDim      = dimension.Amount
	IntensityDim   = dimension.Intensity
)

// dim is shorthand for dimension.New in canonical order L, M, T, I, Θ, N, J.
func dim(l, m, t, i, th, n, j int) dimension.Vector { return dimension.New(l, m, t, i, th, n, j) }

// AreaDim is L².
type AreaDim struct{}

func (AreaDim) Dimension() dimension.Vector { return dim(2, 0, 0, 0, 0, 0, 0) }

// VolumeDim is L³.
type VolumeDim struct{}

func (VolumeDim) Dimension() dimension.Vector { return dim(3, 0, 0, 0, 0, 0, 0) }

// VelocityDim is L·T⁻¹.
type VelocityDim struct{}

func (VelocityDim) Dimension() dimension.Vector { return dim(1, 0, -1, 0, 0, 0, 0) }

// AccelerationDim is L·T⁻².
type AccelerationDim struct{}

func (AccelerationDim) Dimension() dimension.Vector { return dim(1, 0, -2, 0, 0, 0, 0) }

// ForceDim is L·M·T⁻².
type ForceDim struct{}

func (ForceDim) Dimension() dimension.Vector { return dim(1, 1, -2, 0, 0, 0, 0) }

// PressureDim is L⁻¹·M·T⁻².
type PressureDim struct{}

func (PressureDim) Dimension() dimension.Vector { return dim(-1, 1, -2, 0, 0, 0, 0) }

// EnergyDim is L²·M·T⁻², shared by energy and torque.
type EnergyDim struct{}

func (EnergyDim) Dimension() dimension.Vector { return dim(2, 1, -2, 0, 0, 0, 0) }

// PowerDim is L²·M·T⁻³.
type PowerDim struct{}

func (PowerDim) Dimension() dimension.Vector { return dim(2, 1, -3, 0, 0, 0, 0) }

// FrequencyDim is T⁻¹, shared by frequency and angular velocity.
type FrequencyDim struct{}

func (FrequencyDim) Dimension() dimension.Vector { return dim(0, 0, -1, 0, 0, 0, 0) }

// ChargeDim is T·I.
type ChargeDim struct{}

func (ChargeDim) Dimension() dimension.Vector { return dim(0, 0, 1, 1, 0, 0, 0) }

// PotentialDim is L²·M·T⁻³·I⁻¹.
type PotentialDim struct{}

func (PotentialDim) Dimension() dimension.Vector { return dim(2, 1, -3, -1, 0, 0, 0) }

// CapacitanceDim is L⁻²·M⁻¹·T⁴·I².
type CapacitanceDim struct{}

func (CapacitanceDim) Dimension() dimension.Vector { return dim(-2, -1, 4, 2, 0, 0, 0) }

// ResistanceDim is L²·M·T⁻³·I⁻².
type ResistanceDim struct{}

func (ResistanceDim) Dimension() dimension.Vector { return dim(2, 1, -3, -2, 0, 0, 0) }

// ConductanceDim is L⁻²·M⁻¹·T³·I².
type ConductanceDim struct{}

func (ConductanceDim) Dimension() dimension.Vector { return dim(-2, -1, 3, 2, 0, 0, 0) }

// MagneticFluxDim is L²·M·T⁻²·I⁻¹.
type MagneticFluxDim struct{}

func (MagneticFluxDim) Dimension() dimension.Vector { return dim(2, 1, -2, -1, 0, 0, 0) }

// MagneticInductionDim is M·T⁻²·I⁻¹.
type MagneticInductionDim struct{}

func (MagneticInductionDim) Dimension() dimension.Vector { return dim(0, 1, -2, -1, 0, 0, 0) }

// InductanceDim is L²·M·T⁻²·I⁻².
type InductanceDim struct{}

func (InductanceDim) Dimension() dimension.Vector { return dim(2, 1, -2, -2, 0, 0, 0) }

// PermittivityDim is L⁻³·M⁻¹·T⁴·I².
type PermittivityDim struct{}

func (PermittivityDim) Dimension() dimension.Vector { return dim(-3, -1, 4, 2, 0, 0, 0) }
