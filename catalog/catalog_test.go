package catalog_test

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/si"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var extra = &catalog.Catalog{
	Rules: []catalog.Rule{
		{Op: "+", Left: "Strain", Right: "Strain", Result: "Strain"},
		{Op: "sub", Left: "Strain", Right: "Strain", Result: "Strain"},
	},
	Quantities: []catalog.Quantity{
		{
			Name:      "FuzzyWaffles",
			Doc:       "Area times squared time per mass",
			Dimension: map[string]int{"length": 2, "T": 2, "mass": -1},
			Base:      catalog.Name{Name: "square metre square second per kilogram", Symbol: "m²·s²/kg"},
		},
		{
			Name:   "Jerk",
			Derive: []catalog.Term{{Quantity: "Length", Power: 1}, {Quantity: "Time", Power: -3}},
			Base:   catalog.Name{Name: "metre per second cubed", Symbol: "m/s³"},
		},
		{
			Name:     "Strain",
			Kind:     "Strain",
			Base:     catalog.Name{Name: "strain", Symbol: "ε"},
			Prefixes: true,
		},
	},
	Units: []catalog.Unit{
		{Quantity: "FuzzyWaffles", Name: "fuzzy waffle", Symbol: "fw", Factor: 42},
		{Quantity: "Length", Name: "furlong", Symbol: "fur", Factor: 201.168},
		{Quantity: "ThermodynamicTemperature", Name: "rankine", Symbol: "°Ra", Factor: 0.5555555555555556},
	},
}

var equateEmpty = cmpopts.EquateEmpty()

func siRegistry(t *testing.T) (*registry.Registry, *kind.Table) {
	t.Helper()
	reg := registry.New()
	require.NoError(t, si.Register(reg))
	kinds := kind.NewTable()
	require.NoError(t, si.DeclareKinds(kinds))

	return reg, kinds
}

// TestLoad decodes the same catalogue in every format.
func TestLoad(t *testing.T) {
	for _, name := range []string{"extra.toml", "extra.yaml", "extra.json"} {
		t.Run(name, func(t *testing.T) {
			got, err := catalog.Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(extra, got, equateEmpty); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

// TestLoadErrors covers bad files and formats.
func TestLoadErrors(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "extra.ini"))
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	_, err = catalog.Load(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrInvalidCatalog)

	_, err = catalog.Load(filepath.Join("testdata", "unknown_key.toml"))
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "colour")

	_, err = catalog.Load(filepath.Join("testdata", "bad.toml"))
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	for _, want := range []string{"quantities[0]", "base unit", "units[0]"} {
		assert.Contains(t, err.Error(), want)
	}

	_, err = catalog.Decode(strings.NewReader("rules: [1, 2"), catalog.YAML)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.True(t, stderrors.Is(err, catalog.ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "decode yaml")
	_, err = catalog.Decode(strings.NewReader(`{"units": [{"size": 1}]}`), catalog.JSON)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	assert.True(t, stderrors.Is(err, catalog.ErrInvalidCatalog))
	assert.Contains(t, err.Error(), "size")
	_, err = catalog.Decode(strings.NewReader(""), "xml")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)

	empty, err := catalog.Decode(strings.NewReader(""), catalog.YAML)
	require.NoError(t, err)
	assert.Empty(t, empty.Quantities)
}

// TestValidate lists the structural checks.
func TestValidate(t *testing.T) {
	base := catalog.Name{Name: "thing", Symbol: "th"}
	cases := []struct {
		name string
		cat  catalog.Catalog
		want string
	}{
		{"bad op", catalog.Catalog{Rules: []catalog.Rule{{Op: "%", Left: "A", Right: "A", Result: "A"}}}, "unknown op"},
		{"empty kind", catalog.Catalog{Rules: []catalog.Rule{{Op: "+", Left: "A", Right: "A"}}}, "empty kind"},
		{"no name", catalog.Catalog{Quantities: []catalog.Quantity{{Base: base}}}, "empty name"},
		{"twice", catalog.Catalog{Quantities: []catalog.Quantity{{Name: "Q", Base: base}, {Name: "Q", Base: base}}}, "defined twice"},
		{"both", catalog.Catalog{Quantities: []catalog.Quantity{{
			Name: "Q", Base: base, Dimension: map[string]int{"L": 1}, Derive: []catalog.Term{{Quantity: "Length", Power: 1}},
		}}}, "both dimension and derive"},
		{"range", catalog.Catalog{Quantities: []catalog.Quantity{{Name: "Q", Base: base, Dimension: map[string]int{"L": 65}}}}, "out of range"},
		{"zero power", catalog.Catalog{Quantities: []catalog.Quantity{{Name: "Q", Base: base, Derive: []catalog.Term{{Quantity: "Length"}}}}}, "non-zero power"},
		{"orphan unit", catalog.Catalog{Units: []catalog.Unit{{Name: "u", Symbol: "u", Factor: 1}}}, "no quantity"},
		{"valid", catalog.Catalog{Units: []catalog.Unit{{Quantity: "Q", Name: "u", Symbol: "u", Factor: 2, Offset: -3}}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cat.Validate()
			if tc.want == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestApply adds the extra catalogue to the SI registry.
func TestApply(t *testing.T) {
	reg, kinds := siRegistry(t)
	core, logs := observer.New(zap.InfoLevel)
	require.NoError(t, catalog.Apply(extra, reg, kinds, catalog.WithLogger(zap.New(core))))
	assert.Equal(t, 1, logs.FilterMessage("catalog applied").Len())

	v, err := reg.Convert(10, "fw", "m²·s²/kg")
	require.NoError(t, err)
	assert.InDelta(t, 420, v, 1e-12)

	fw, err := reg.Quantity("FuzzyWaffles")
	require.NoError(t, err)
	assert.Equal(t, dimension.New(2, -1, 2, 0, 0, 0, 0), fw.Dimension)
	assert.Equal(t, kind.Unit, fw.Kind)

	jerk, err := reg.Quantity("Jerk")
	require.NoError(t, err)
	assert.Equal(t, dimension.New(1, 0, -3, 0, 0, 0, 0), jerk.Dimension)

	v, err = reg.Convert(1, "fur", "m")
	require.NoError(t, err)
	assert.InDelta(t, 201.168, v, 1e-12)

	v, err = reg.Convert(491.67, "°Ra", "K")
	require.NoError(t, err)
	assert.InDelta(t, 273.15, v, 1e-9)

	v, err = reg.Convert(1000, "µε", "mε")
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-12)
	strain, err := reg.Quantity("Strain")
	require.NoError(t, err)
	assert.Equal(t, kind.ID("Strain"), strain.Kind)
	assert.True(t, strain.Dimension.IsDimensionless())

	// Strain is a ratio of a different kind.
	_, err = reg.Convert(1, "ε", "%")
	assert.ErrorIs(t, err, registry.ErrIncompatibleUnits)

	res, err := kinds.Resolve(kind.OpSub, "Strain", "Strain")
	require.NoError(t, err)
	assert.Equal(t, kind.ID("Strain"), res)

	// Applying twice changes nothing.
	require.NoError(t, catalog.Apply(extra, reg, kinds))
}

// TestApplyErrors covers failures that need a registry.
func TestApplyErrors(t *testing.T) {
	reg, kinds := siRegistry(t)

	derived := &catalog.Catalog{Quantities: []catalog.Quantity{{
		Name:   "Snap",
		Derive: []catalog.Term{{Quantity: "Distance", Power: 1}},
		Base:   catalog.Name{Name: "snap", Symbol: "snp"},
	}}}
	assert.ErrorIs(t, catalog.Apply(derived, reg, kinds), registry.ErrUnknownQuantity)

	orphan := &catalog.Catalog{Units: []catalog.Unit{{Quantity: "Distance", Name: "league", Symbol: "lea", Factor: 4828}}}
	assert.ErrorIs(t, catalog.Apply(orphan, reg, kinds), registry.ErrUnknownQuantity)

	clash := &catalog.Catalog{Units: []catalog.Unit{{Quantity: "Length", Name: "mile", Symbol: "mi", Factor: 1600}}}
	assert.ErrorIs(t, catalog.Apply(clash, reg, kinds), registry.ErrDuplicateUnit)

	redefine := &catalog.Catalog{Quantities: []catalog.Quantity{{
		Name: "Length", Dimension: map[string]int{"mass": 1}, Base: catalog.Name{Name: "metre", Symbol: "m"},
	}}}
	assert.ErrorIs(t, catalog.Apply(redefine, reg, kinds), registry.ErrDuplicateQuantity)

	builtin := &catalog.Catalog{Rules: []catalog.Rule{{Op: "/", Left: "Torque", Right: "Torque", Result: "Torque"}}}
	assert.ErrorIs(t, catalog.Apply(builtin, reg, kinds), kind.ErrConflictingRule)
	assert.Panics(t, func() { catalog.WithLogger(nil) })
}

// TestExportRoundTrip exports the SI registry, encodes it in every format
// and applies the decoded copy to an empty registry.
func TestExportRoundTrip(t *testing.T) {
	reg, kinds := siRegistry(t)
	exported, err := catalog.FromRegistry(reg, kinds)
	require.NoError(t, err)
	assert.Len(t, exported.Quantities, 30)
	assert.Len(t, exported.Rules, len(kinds.Rules()))

	for _, f := range []catalog.Format{catalog.TOML, catalog.YAML, catalog.JSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, catalog.Encode(&buf, exported, f))

			decoded, err := catalog.Decode(&buf, f)
			require.NoError(t, err)
			if diff := cmp.Diff(exported, decoded, equateEmpty); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}

			fresh, freshKinds := registry.New(), kind.NewTable()
			require.NoError(t, catalog.Apply(decoded, fresh, freshKinds))
			assert.Equal(t, reg.Quantities(), fresh.Quantities())
			assert.Equal(t, kinds.Rules(), freshKinds.Rules())

			want, err := reg.Units("Length")
			require.NoError(t, err)
			got, err := fresh.Units("Length")
			require.NoError(t, err)
			assert.Equal(t, len(want), len(got))

			v, err := fresh.Convert(100, "°C", "°F", registry.InQuantity("ThermodynamicTemperature"))
			require.NoError(t, err)
			assert.InDelta(t, 212, v, 1e-9)
		})
	}

	assert.ErrorIs(t, catalog.Encode(&bytes.Buffer{}, exported, "ini"), catalog.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]catalog.Format{".toml": catalog.TOML, "YML": catalog.YAML, "yaml": catalog.YAML, ".json": catalog.JSON} {
		got, err := catalog.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := catalog.FormatOf("units.xml")
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
}
