package quantity_test

import (
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/unit"
)

type areaDim struct{}

func (areaDim) Dimension() dimension.Vector { return dimension.New(2, 0, 0, 0, 0, 0, 0) }

type volumeDim struct{}

func (volumeDim) Dimension() dimension.Vector { return dimension.New(3, 0, 0, 0, 0, 0, 0) }

type speedDim struct{}

func (speedDim) Dimension() dimension.Vector { return dimension.New(1, 0, -1, 0, 0, 0, 0) }

type freqDim struct{}

func (freqDim) Dimension() dimension.Vector { return dimension.New(0, 0, -1, 0, 0, 0, 0) }

const torqueID kind.ID = "Torque"

type torqueKind struct{}

func (torqueKind) Kind() kind.ID { return torqueID }

type (
	length   = quantity.Quantity[float64, dimension.Length, kind.UnitKind]
	length32 = quantity.Quantity[float32, dimension.Length, kind.UnitKind]
	lengthC  = quantity.Quantity[complex128, dimension.Length, kind.UnitKind]
	area     = quantity.Quantity[float64, areaDim, kind.UnitKind]
	volume   = quantity.Quantity[float64, volumeDim, kind.UnitKind]
	duration = quantity.Quantity[float64, dimension.Time, kind.UnitKind]
	speed    = quantity.Quantity[float64, speedDim, kind.UnitKind]
	freq     = quantity.Quantity[float64, freqDim, kind.UnitKind]
	ratio    = quantity.Quantity[float64, dimension.Dimensionless, kind.UnitKind]
	angle    = quantity.Quantity[float64, dimension.Dimensionless, kind.AngleKind]
	torqueQ  = quantity.Quantity[float64, dimension.Length, torqueKind]
)

var (
	metre     = unit.Base[dimension.Length, kind.UnitKind](unit.New("metre", "m", "SI length"))
	kilometre = metre.Prefixed(unit.Kilo)
	second    = unit.Base[dimension.Time, kind.UnitKind](unit.New("second", "s", "SI time"))
)
