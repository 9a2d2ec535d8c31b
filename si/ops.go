// SPDX-License-Identifier: MIT

package si

import (
	"sync"

	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/quantity"
)

var declareOnce sync.Once

// kinds returns kind.Default() with the SI rules declared. Package-level
// operations below are initialized before init runs, so they call this
// instead of relying on init order.
func kinds() quantity.Option {
	declareOnce.Do(func() {
		if err := DeclareKinds(kind.Default()); err != nil {
			panic(err)
		}
	})

	return quantity.WithKindTable(kind.Default())
}

// Frequently used float64 operations.
var (
	AreaOf         = quantity.MustMul[Length64, Length64, Area64](kinds())
	VolumeOf       = quantity.MustMul[Area64, Length64, Volume64](kinds())
	VelocityOf     = quantity.MustDiv[Length64, Time64, Velocity64](kinds())
	AccelerationOf = quantity.MustDiv[Velocity64, Time64, Acceleration64](kinds())
	ForceOf        = quantity.MustMul[Mass64, Acceleration64, Force64](kinds())
	PressureOf     = quantity.MustDiv[Force64, Area64, Pressure64](kinds())
	WorkOf         = quantity.MustMul[Force64, Length64, Energy64](kinds())
	PowerOf        = quantity.MustDiv[Energy64, Time64, Power64](kinds())
	ChargeOf       = quantity.MustMul[ElectricCurrent64, Time64, ElectricCharge64](kinds())
	VoltageOf      = quantity.MustMul[ElectricCurrent64, ElectricResistance64, ElectricPotential64](kinds())
	FrequencyOf    = quantity.MustRecip[Time64, Frequency64](kinds())
	AngularRateOf  = quantity.MustDiv[Angle64, Time64, AngularVelocity64](kinds())

	// TempDiff subtracts two absolute temperatures into an interval.
	TempDiff = quantity.MustSub[ThermodynamicTemperature64, ThermodynamicTemperature64, TemperatureInterval64](kinds())
	// TempAdd shifts an absolute temperature up by an interval.
	TempAdd = quantity.MustAdd[ThermodynamicTemperature64, TemperatureInterval64, ThermodynamicTemperature64](kinds())
	// TempSub shifts an absolute temperature down by an interval.
	TempSub = quantity.MustSub[ThermodynamicTemperature64, TemperatureInterval64, ThermodynamicTemperature64](kinds())
)
