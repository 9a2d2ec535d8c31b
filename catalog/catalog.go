// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/unit"
)

// Catalog is a declarative set of kind rules, quantities and units.
type Catalog struct {
	Rules      []Rule     `toml:"rules,omitempty" yaml:"rules,omitempty" json:"rules,omitempty"`
	Quantities []Quantity `toml:"quantities,omitempty" yaml:"quantities,omitempty" json:"quantities,omitempty"`
	Units      []Unit     `toml:"units,omitempty" yaml:"units,omitempty" json:"units,omitempty"`
}

// Rule is a kind rule. Op is one of "+", "-", "*", "/" or add, sub, mul, div.
type Rule struct {
	Op     string `toml:"op" yaml:"op" json:"op"`
	Left   string `toml:"left" yaml:"left" json:"left"`
	Right  string `toml:"right" yaml:"right" json:"right"`
	Result string `toml:"result" yaml:"result" json:"result"`
	Mirror bool   `toml:"mirror,omitempty" yaml:"mirror,omitempty" json:"mirror,omitempty"`
}

// Quantity defines a quantity. Dimension maps base names or symbols
// ("length", "L") to exponents; Derive builds the dimension from known
// quantities instead. Setting neither gives a dimensionless quantity.
type Quantity struct {
	Name      string         `toml:"name" yaml:"name" json:"name"`
	Doc       string         `toml:"doc,omitempty" yaml:"doc,omitempty" json:"doc,omitempty"`
	Kind      string         `toml:"kind,omitempty" yaml:"kind,omitempty" json:"kind,omitempty"`
	Dimension map[string]int `toml:"dimension,omitempty" yaml:"dimension,omitempty" json:"dimension,omitempty"`
	Derive    []Term         `toml:"derive,omitempty" yaml:"derive,omitempty" json:"derive,omitempty"`
	Base      Name           `toml:"base" yaml:"base" json:"base"`
	Prefixes  bool           `toml:"prefixes,omitempty" yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
}

// Term is one factor quantity^power of a derived dimension.
type Term struct {
	Quantity string `toml:"quantity" yaml:"quantity" json:"quantity"`
	Power    int    `toml:"power" yaml:"power" json:"power"`
}

// Name is a unit's long name, symbol and description.
type Name struct {
	Name   string `toml:"name" yaml:"name" json:"name"`
	Symbol string `toml:"symbol" yaml:"symbol" json:"symbol"`
	Doc    string `toml:"doc,omitempty" yaml:"doc,omitempty" json:"doc,omitempty"`
}

// Unit is an extra unit of an existing quantity. With Prefixes set the
// whole prefix family rooted at the unit is added.
type Unit struct {
	Quantity string  `toml:"quantity" yaml:"quantity" json:"quantity"`
	Name     string  `toml:"name" yaml:"name" json:"name"`
	Symbol   string  `toml:"symbol" yaml:"symbol" json:"symbol"`
	Doc      string  `toml:"doc,omitempty" yaml:"doc,omitempty" json:"doc,omitempty"`
	Factor   float64 `toml:"factor" yaml:"factor" json:"factor"`
	Offset   float64 `toml:"offset,omitempty" yaml:"offset,omitempty" json:"offset,omitempty"`
	Prefixes bool    `toml:"prefixes,omitempty" yaml:"prefixes,omitempty" json:"prefixes,omitempty"`
}

// Descriptor returns the unit descriptor of n.
func (n Name) Descriptor() unit.Unit { return unit.New(n.Name, n.Symbol, n.Doc) }

// Descriptor returns the unit descriptor of u.
func (u Unit) Descriptor() unit.Unit { return unit.New(u.Name, u.Symbol, u.Doc) }

// Conversion returns u's map to its quantity's base unit.
func (u Unit) Conversion() unit.Conversion {
	return unit.Conversion{Factor: u.Factor, Offset: u.Offset}
}

// KindRules converts the rule section.
func (c *Catalog) KindRules() ([]kind.Rule, error) {
	out := make([]kind.Rule, 0, len(c.Rules))
	for i, r := range c.Rules {
		op, err := kind.ParseOp(r.Op)
		if err != nil {
			return nil, errors.Wrapf(err, "rules[%d]", i)
		}
		out = append(out, kind.Rule{
			Op:     op,
			Left:   kind.ID(r.Left),
			Right:  kind.ID(r.Right),
			Result: kind.ID(r.Result),
			Mirror: r.Mirror,
		})
	}

	return out, nil
}

// ExplicitDimension parses the Dimension map.
func (q Quantity) ExplicitDimension() (dimension.Vector, error) {
	var v dimension.Vector
	for name, e := range q.Dimension {
		b, err := dimension.ParseBase(name)
		if err != nil {
			return dimension.Vector{}, err
		}
		v[b] += e
	}

	return v, v.Validate()
}

// Validate reports every structural problem of c. It does not consult any
// registry, so derived dimensions and unit quantities are checked on Apply.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, r := range c.Rules {
		if _, err := kind.ParseOp(r.Op); err != nil {
			add("rules[%d]: unknown op %q", i, r.Op)
		}
		if r.Left == "" || r.Right == "" || r.Result == "" {
			add("rules[%d]: empty kind", i)
		}
	}

	seen := make(map[string]bool, len(c.Quantities))
	for i, q := range c.Quantities {
		switch {
		case q.Name == "":
			add("quantities[%d]: empty name", i)
		case seen[q.Name]:
			add("quantities[%d]: %s defined twice", i, q.Name)
		}
		seen[q.Name] = true

		if len(q.Dimension) > 0 && len(q.Derive) > 0 {
			add("quantities[%d]: %s has both dimension and derive", i, q.Name)
		}
		if _, err := q.ExplicitDimension(); err != nil {
			add("quantities[%d]: %s: %v", i, q.Name, err)
		}
		for j, t := range q.Derive {
			if t.Quantity == "" || t.Power == 0 {
				add("quantities[%d].derive[%d]: need a quantity and a non-zero power", i, j)
			}
		}
		if err := q.Base.Descriptor().Validate(); err != nil {
			add("quantities[%d]: %s base unit: %v", i, q.Name, err)
		}
	}

	for i, u := range c.Units {
		if u.Quantity == "" {
			add("units[%d]: no quantity", i)
		}
		if err := u.Descriptor().Validate(); err != nil {
			add("units[%d]: %v", i, err)
		}
		if err := u.Conversion().Validate(); err != nil {
			add("units[%d]: %s: %v", i, u.Name, err)
		}
	}

	if len(problems) == 0 {
		return nil
	}

	return errors.Wrap(ErrInvalidCatalog, strings.Join(problems, "; "))
}
