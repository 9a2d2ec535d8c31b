package unit_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	metre    = unit.Base[dimension.Length, kind.UnitKind](unit.New("metre", "m", "SI length"))
	gram     = unit.New("gram", "g", "a thousandth of a kilogram")
	kilogram = unit.Base[dimension.Mass, kind.UnitKind](
		unit.New("kilogram", "kg", "SI mass"),
		unit.WithPrefixRoot(gram, 1e-3),
	)
	celsius = unit.Define[dimension.Temperature, kind.UnitKind](
		unit.New("celsius", "°C", "degree Celsius"), 1, unit.WithOffset(273.15))
	fahrenheit = unit.Define[dimension.Temperature, kind.UnitKind](
		unit.New("fahrenheit", "°F", "degree Fahrenheit"), 5.0/9.0, unit.WithOffset(459.67))
)

// TestDescriptor covers the accessors of Unit and Of.
func TestDescriptor(t *testing.T) {
	assert.Equal(t, "metre", metre.LongName())
	assert.Equal(t, "m", metre.PrintName())
	assert.Equal(t, "SI length", metre.Doc())
	assert.Equal(t, "m", metre.String())
	assert.Equal(t, dimension.Of(dimension.BaseLength), metre.Dimension())
	assert.Equal(t, kind.Unit, metre.Kind())
	assert.True(t, metre.Conversion().IsIdentity())
	assert.Equal(t, "metre", metre.Descriptor().LongName())
	assert.Equal(t, "gram", kilogram.PrefixRoot().LongName())

	assert.ErrorIs(t, unit.New("", "x", "").Validate(), unit.ErrEmptyName)
}

// TestDefinePanics rejects nonsensical conversions at definition time.
func TestDefinePanics(t *testing.T) {
	u := unit.New("bogus", "b", "")
	assert.Panics(t, func() { unit.Define[dimension.Length, kind.UnitKind](u, 0) })
	assert.Panics(t, func() { unit.Define[dimension.Length, kind.UnitKind](unit.New("", "", ""), 1) })
	assert.Panics(t, func() {
		unit.Define[dimension.Length, kind.UnitKind](u, 2, unit.WithPrefixRoot(gram, 0))
	})
}

// TestConversion checks the affine formulas in both directions.
func TestConversion(t *testing.T) {
	c := celsius.Conversion()
	assert.InDelta(t, 293.15, unit.ToBase(c, 20.0), 1e-12)
	assert.InDelta(t, 20.0, unit.FromBase(c, 293.15), 1e-12)

	f := fahrenheit.Conversion()
	assert.InDelta(t, 273.15, unit.ToBase(f, 32.0), 1e-9)
	assert.InDelta(t, 212.0, unit.FromBase(f, 373.15), 1e-9)
	assert.InDelta(t, -40.0, unit.Between(-40.0, c, f), 1e-9)

	km := metre.Prefixed(unit.Kilo)
	assert.Equal(t, 200.0, unit.ToBase(km.Conversion(), 0.2))
	assert.Equal(t, 0.2, unit.FromBase(km.Conversion(), 200.0))
	assert.Equal(t, complex(2000, 1000), unit.ToBase(km.Conversion(), complex(2, 1)))
	assert.Equal(t, float32(1500), unit.ToBase(km.Conversion(), float32(1.5)))

	assert.ErrorIs(t, unit.Conversion{}.Validate(), unit.ErrInvalidFactor)
	assert.NoError(t, unit.Conversion{Factor: 1, Offset: -3}.Validate())
}

// TestPrefixed checks derived names and factors.
func TestPrefixed(t *testing.T) {
	km := metre.Prefixed(unit.Kilo)
	assert.Equal(t, "kilometre", km.LongName())
	assert.Equal(t, "km", km.PrintName())
	assert.Equal(t, 1000.0, km.Conversion().Factor)

	mm := metre.Prefixed(unit.Milli)
	assert.Equal(t, "mm", mm.PrintName())
	assert.Equal(t, 1e-3, mm.Conversion().Factor)

	um := metre.Prefixed(unit.Micro)
	assert.Equal(t, "µm", um.PrintName())
	assert.Equal(t, 1e-6, um.Conversion().Factor)

	// Prefixing a prefixed unit restarts from the root.
	assert.Equal(t, "Mm", km.Prefixed(unit.Mega).PrintName())
	assert.Equal(t, metre, km.Prefixed(unit.NoPrefix))

	// Mass prefixes apply to the gram.
	assert.Equal(t, "kg", kilogram.Prefixed(unit.Kilo).PrintName())
	assert.Equal(t, 1.0, kilogram.Prefixed(unit.Kilo).Conversion().Factor)
	assert.Equal(t, "mg", kilogram.Prefixed(unit.Milli).PrintName())
	g := kilogram.Prefixed(unit.NoPrefix)
	assert.Equal(t, "g", g.PrintName())
	assert.Equal(t, 1e-3, g.Conversion().Factor)

	// Offsets survive prefixing.
	assert.Equal(t, 273.15, celsius.Prefixed(unit.Milli).Conversion().Offset)
}

// TestFamily checks membership and ordering.
func TestPrefixApply(t *testing.T) {
	dc := unit.New("degree celsius", "°C", "")
	u, c := unit.Milli.Apply(dc, unit.Conversion{Factor: 1, Offset: 273.15})
	assert.Equal(t, "millidegree celsius", u.LongName())
	assert.Equal(t, "m°C", u.PrintName())
	assert.Equal(t, unit.Conversion{Factor: 1e-3, Offset: 273.15}, c)

	u, c = unit.NoPrefix.Apply(dc, unit.Identity)
	assert.Equal(t, dc, u)
	assert.True(t, c.IsIdentity())
}

func TestFamily(t *testing.T) {
	fam := metre.Family()
	require.Len(t, fam, 23)
	assert.Equal(t, "qm", fam[0].PrintName())
	assert.Equal(t, "Qm", fam[22].PrintName())
	assert.Equal(t, metre, fam[12])

	for i := 1; i < len(fam); i++ {
		assert.Less(t, fam[i-1].Conversion().Factor, fam[i].Conversion().Factor)
	}
	for _, u := range fam {
		assert.NotContains(t, []string{"dam", "hm"}, u.PrintName())
	}

	assert.Len(t, unit.Prefixes(), 23)
}

// TestParsePrefix accepts names, symbols and "u" for micro.
func TestParsePrefix(t *testing.T) {
	for in, want := range map[string]unit.Prefix{
		"kilo": unit.Kilo, "k": unit.Kilo, "µ": unit.Micro, "u": unit.Micro,
		"Q": unit.Quetta, "": unit.NoPrefix,
	} {
		got, err := unit.ParsePrefix(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := unit.ParsePrefix("hecto")
	assert.ErrorIs(t, err, unit.ErrUnknownPrefix)
	assert.Equal(t, 1e-2, unit.Centi.Factor())
	assert.True(t, unit.NoPrefix.IsNone())
}

// TestFindPrefix covers the clamped engineering steps.
func TestFindPrefix(t *testing.T) {
	cases := []struct {
		in     float64
		val    float64
		prefix string
	}{
		{1e-40, 1e-10, "q"},
		{1e-30, 1, "q"},
		{1e-29, 10, "q"},
		{1e-15, 1, "f"},
		{123, 123, ""},
		{123e6, 123, "M"},
		{0.1, 100, "m"},
		{-4200, -4.2, "k"},
		{1e40, 1e10, "Q"},
	}
	for _, c := range cases {
		v, p := unit.FindPrefix(c.in)
		assert.Equal(t, c.prefix, p, "%g", c.in)
		assert.InDelta(t, c.val, v, 1e-9*max(1, c.val), "%g", c.in)
	}

	v, p := unit.FindPrefix(0.0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "", p)

	cv, p := unit.FindPrefix(complex(0, 2e6))
	assert.Equal(t, "M", p)
	assert.InDelta(t, 2.0, imag(cv), 1e-12)
}

// TestFormatted checks default and fixed precision output.
func TestFormatted(t *testing.T) {
	f := unit.Display(1.346, metre.Descriptor())
	assert.Equal(t, "1.346 m", f.String())
	assert.Equal(t, "1.346 m", fmt.Sprint(f))
	assert.Equal(t, "1.35 m", fmt.Sprintf("%.2v", f))
	assert.Equal(t, "(1+2i) A", unit.Display(complex(1, 2), unit.New("ampere", "A", "")).String())
	assert.Equal(t, "4.2 mA", fmt.Sprintf("%.1v", unit.Auto(0.0042, unit.New("ampere", "A", ""))))
}

// TestFormattedVerbs honours the verb, width and alignment flags.
func TestFormattedVerbs(t *testing.T) {
	f := unit.Display(1.346, metre.Descriptor())
	for _, tc := range []struct {
		format string
		want   string
	}{
		{"%s", "1.346 m"},
		{"%.1s", "1.3 m"},
		{"%e", "1.346000e+00 m"},
		{"%.2e", "1.35e+00 m"},
		{"%f", "1.346000 m"},
		{"%g", "1.346 m"},
		{"%+.1f", "+1.3 m"},
		{"%10v", "   1.346 m"},
		{"%-10v|", "1.346 m   |"},
		{"%9.1f", "    1.3 m"},
		{"%3v", "1.346 m"},
		{"%d", "%!d(unit.Formatted=1.346 m)"},
	} {
		assert.Equal(t, tc.want, fmt.Sprintf(tc.format, f), tc.format)
	}
	assert.Equal(t, "  1.0 µA", fmt.Sprintf("%8.1v", unit.Auto(1e-6, unit.New("ampere", "A", ""))))
}
