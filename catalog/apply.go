// SPDX-License-Identifier: MIT

package catalog

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/registry"
	"github.com/katalvlaran/lvunits/unit"
	"go.uber.org/zap"
)

// Apply declares c's rules on kinds, then defines its quantities and units
// on reg. The catalogue is validated first and the rules are declared
// atomically; a registry error part way through leaves the earlier
// definitions in place.
func Apply(c *Catalog, reg *registry.Registry, kinds *kind.Table, opts ...Option) error {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := c.Validate(); err != nil {
		return err
	}

	rules, err := c.KindRules()
	if err != nil {
		return errors.Wrapf(ErrInvalidCatalog, "%v", err)
	}
	if err := kinds.Declare(rules...); err != nil {
		return errors.Wrap(err, "catalog: rules")
	}

	for _, q := range c.Quantities {
		if err := applyQuantity(q, reg); err != nil {
			return errors.Wrapf(err, "catalog: quantity %s", q.Name)
		}
	}
	for _, u := range c.Units {
		if err := addUnit(reg, u.Quantity, u.Descriptor(), u.Conversion(), u.Prefixes); err != nil {
			return errors.Wrapf(err, "catalog: unit %s", u.Name)
		}
	}

	o.log.Info("catalog applied",
		zap.Int("rules", len(c.Rules)),
		zap.Int("quantities", len(c.Quantities)),
		zap.Int("units", len(c.Units)),
	)

	return nil
}

func applyQuantity(q Quantity, reg *registry.Registry) error {
	dim, err := q.ExplicitDimension()
	if err != nil {
		return err
	}
	for _, t := range q.Derive {
		spec, err := reg.Quantity(t.Quantity)
		if err != nil {
			return err
		}
		dim = dim.Mul(spec.Dimension.Pow(t.Power))
	}

	base := q.Base.Descriptor()
	if err := reg.DefineQuantity(registry.QuantitySpec{
		Name:      q.Name,
		Dimension: dim,
		Kind:      kind.ID(q.Kind),
		BaseUnit:  base,
		Doc:       q.Doc,
	}); err != nil {
		return err
	}
	if q.Prefixes {
		return addUnit(reg, q.Name, base, unit.Identity, true)
	}

	return nil
}

// addUnit registers u, and its prefix family when family is set.
func addUnit(reg *registry.Registry, quantity string, u unit.Unit, c unit.Conversion, family bool) error {
	if !family {
		return reg.AddUnit(quantity, u, c)
	}
	for _, p := range unit.Prefixes() {
		pu, pc := p.Apply(u, c)
		if err := reg.AddUnit(quantity, pu, pc); err != nil {
			return err
		}
	}

	return nil
}

// FromRegistry exports reg and the declared rules of kinds. Dimensions are
// written as explicit exponents and every non-base unit is listed.
func FromRegistry(reg *registry.Registry, kinds *kind.Table) (*Catalog, error) {
	c := &Catalog{}
	if kinds != nil {
		for _, r := range kinds.Rules() {
			c.Rules = append(c.Rules, Rule{
				Op:     r.Op.String(),
				Left:   string(r.Left),
				Right:  string(r.Right),
				Result: string(r.Result),
			})
		}
	}

	for _, spec := range reg.Quantities() {
		q := Quantity{
			Name:      spec.Name,
			Doc:       spec.Doc,
			Dimension: exponents(spec.Dimension),
			Base: Name{
				Name:   spec.BaseUnit.LongName(),
				Symbol: spec.BaseUnit.PrintName(),
				Doc:    spec.BaseUnit.Doc(),
			},
		}
		if spec.Kind != kind.Unit {
			q.Kind = string(spec.Kind)
		}
		c.Quantities = append(c.Quantities, q)

		entries, err := reg.Units(spec.Name)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.Unit == spec.BaseUnit && e.Conversion.IsIdentity() {
				continue
			}
			c.Units = append(c.Units, Unit{
				Quantity: spec.Name,
				Name:     e.Unit.LongName(),
				Symbol:   e.Unit.PrintName(),
				Doc:      e.Unit.Doc(),
				Factor:   e.Conversion.Factor,
				Offset:   e.Conversion.Offset,
			})
		}
	}

	return c, nil
}

func exponents(v dimension.Vector) map[string]int {
	if v.IsDimensionless() {
		return nil
	}
	out := make(map[string]int)
	for _, b := range dimension.Bases() {
		if e := v.Get(b); e != 0 {
			out[b.String()] = e
		}
	}

	return out
}
