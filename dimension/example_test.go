package dimension_test

import (
	"fmt"

	"github.com/katalvlaran/lvunits/dimension"
)

// ExampleVector_Root shows the exact-division rule behind sqrt and cbrt.
func ExampleVector_Root() {
	length := dimension.Length{}.Dimension()
	volume := length.Pow(3)

	side, err := volume.Root(3)
	fmt.Println(side, err)

	_, err = volume.Root(2)
	fmt.Println(err != nil)
	// Output:
	// L <nil>
	// true
}

// ExampleVector_BaseUnits renders a derived dimension in SI base units.
func ExampleVector_BaseUnits() {
	force := dimension.Mass{}.Dimension().
		Mul(dimension.Length{}.Dimension()).
		Div(dimension.Time{}.Dimension().Pow(2))

	fmt.Println(force)
	fmt.Println(force.BaseUnits())
	// Output:
	// L·M·T⁻²
	// m·kg·s⁻²
}
