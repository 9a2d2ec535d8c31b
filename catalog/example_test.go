package catalog_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/si"
)

// ExampleApply adds a derived quantity and an old length unit.
func ExampleApply() {
	const src = `
[[quantities]]
name = "Jerk"
derive = [{ quantity = "Length", power = 1 }, { quantity = "Time", power = -3 }]
base = { name = "metre per second cubed", symbol = "m/s³" }

[[units]]
quantity = "Length"
name = "furlong"
symbol = "fur"
factor = 201.168
`
	cat, err := catalog.Decode(strings.NewReader(src), catalog.TOML)
	if err != nil {
		fmt.Println(err)
		return
	}

	reg := registry.New()
	if err := si.Register(reg); err != nil {
		fmt.Println(err)
		return
	}
	if err := catalog.Apply(cat, reg, kind.NewTable()); err != nil {
		fmt.Println(err)
		return
	}

	jerk, _ := reg.Quantity("Jerk")
	miles, _ := reg.Convert(8, "fur", "mi")
	fmt.Println(jerk.Dimension.BaseUnits())
	fmt.Printf("%.3f\n", miles)
	// Output:
	// m·s⁻³
	// 1.000
}
