// Package si is the International System of Units expressed with lvunits.
//
// It provides dimension markers for the derived quantities, the
// ThermodynamicTemperature and Torque kinds with their rules, quantity type
// aliases for every scalar width, units with metric prefix families, and a
// few physical constants:
//
//	d := quantity.New(12.5, si.Kilometre)
//	t := quantity.New(30.0, si.Minute)
//	v := si.VelocityOf.Apply(d, t)
//	fmt.Printf("%.0v\n", v.Display(si.KilometrePerHour)) // 25 km/h
//
// Importing the package declares its kind rules in kind.Default() and
// registers every quantity and unit in registry.Default(). Register does the
// same for another registry.
//
// Temperatures: ThermodynamicTemperature is an absolute temperature (kind
// ThermodynamicTemperatureKind), TemperatureInterval a difference (neutral
// kind). Both are measured in kelvin. Two absolutes subtract to an interval,
// an absolute plus or minus an interval stays absolute, and two absolutes
// cannot be added:
//
//	diff := si.TempDiff.Apply(t1, t2) // TemperatureInterval64
//	later := si.TempAdd.Apply(t1, diff)
package si
