// SPDX-License-Identifier: MIT
// Package: registry
//
// Purpose:
//   - Store quantity descriptions and their units; answer lookups by name.
//
// Concurrency:
//   - All exported methods are safe for concurrent use. Definitions take the
//     write lock, lookups and conversions the read lock.
//
// Determinism:
//   - Listings are sorted (quantities by name, units by factor then name), so
//     CLI output and error hints are stable.

package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/dimension"
	"github.com/katalvlaran/lvunits/kind"
	"github.com/katalvlaran/lvunits/unit"
	"go.uber.org/zap"
)

// QuantitySpec describes a quantity: its dimension, kind and base unit.
type QuantitySpec struct {
	Name      string
	Dimension dimension.Vector
	Kind      kind.ID
	BaseUnit  unit.Unit
	Doc       string
}

// Entry is one unit of one quantity.
type Entry struct {
	Quantity   string
	Dimension  dimension.Vector
	Kind       kind.ID
	Unit       unit.Unit
	Conversion unit.Conversion
}

type record struct {
	spec  QuantitySpec
	units []Entry
}

// Registry maps quantity names and unit identifiers to their definitions.
type Registry struct {
	mu         sync.RWMutex
	quantities map[string]*record
	byPrint    map[string][]Entry
	byLong     map[string][]Entry
	log        *zap.Logger
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Registry{
		quantities: make(map[string]*record),
		byPrint:    make(map[string][]Entry),
		byLong:     make(map[string][]Entry),
		log:        o.log,
	}
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// DefineQuantity adds a quantity together with its base unit. An empty Kind
// means kind.Unit. Redefining a quantity identically is a no-op.
func (r *Registry) DefineQuantity(spec QuantitySpec) error {
	if spec.Name == "" {
		return errors.Wrap(ErrUnknownQuantity, "empty quantity name")
	}
	if spec.Kind == "" {
		spec.Kind = kind.Unit
	}
	if err := spec.Dimension.Validate(); err != nil {
		return errors.Wrapf(err, "quantity %s", spec.Name)
	}
	if err := spec.BaseUnit.Validate(); err != nil {
		return errors.Wrapf(err, "quantity %s base unit", spec.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.quantities[spec.Name]; ok {
		if rec.spec == spec {
			return nil
		}
		return errors.Wrapf(ErrDuplicateQuantity, "%s: already defined as %s (%s)",
			spec.Name, rec.spec.Dimension, rec.spec.Kind)
	}

	rec := &record{spec: spec}
	r.quantities[spec.Name] = rec
	r.log.Debug("quantity defined",
		zap.String("quantity", spec.Name),
		zap.Stringer("dimension", spec.Dimension),
		zap.String("kind", string(spec.Kind)),
		zap.String("base", spec.BaseUnit.PrintName()),
	)

	return r.addLocked(rec, spec.BaseUnit, unit.Identity)
}

// Define adds the quantity of (D, K) whose base unit is base.
func Define[D dimension.Marker, K kind.Marker](r *Registry, name, doc string, base unit.Of[D, K]) error {
	if !base.Conversion().IsIdentity() {
		return errors.Wrapf(ErrQuantityMismatch, "%s: base unit %s has conversion %+v",
			name, base.PrintName(), base.Conversion())
	}

	return r.DefineQuantity(QuantitySpec{
		Name:      name,
		Dimension: base.Dimension(),
		Kind:      base.Kind(),
		BaseUnit:  base.Descriptor(),
		Doc:       doc,
	})
}

// AddUnit registers u with conversion c under an existing quantity.
func (r *Registry) AddUnit(quantity string, u unit.Unit, c unit.Conversion) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return errors.Wrapf(err, "unit %s", u.LongName())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.quantities[quantity]
	if !ok {
		return errors.Wrapf(ErrUnknownQuantity, "%q", quantity)
	}

	return r.addLocked(rec, u, c)
}

// Register adds typed units under an existing quantity. The quantity must
// have the dimension and kind the units are bound to. Every unit is checked
// before any is added, so a failed call leaves the registry unchanged.
func Register[D dimension.Marker, K kind.Marker](r *Registry, quantity string, units ...unit.Of[D, K]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.quantities[quantity]
	if !ok {
		return errors.Wrapf(ErrUnknownQuantity, "%q", quantity)
	}
	pending := make([]Entry, 0, len(units))
	for _, u := range units {
		if u.Dimension() != rec.spec.Dimension || u.Kind() != rec.spec.Kind {
			return errors.Wrapf(ErrQuantityMismatch, "unit %s is %s (%s), quantity %s is %s (%s)",
				u.PrintName(), u.Dimension(), u.Kind(), quantity, rec.spec.Dimension, rec.spec.Kind)
		}
		known, err := rec.clash(u.Descriptor(), u.Conversion(), pending)
		if err != nil {
			return err
		}
		if !known {
			pending = append(pending, rec.entry(u.Descriptor(), u.Conversion()))
		}
	}
	for _, e := range pending {
		r.insertLocked(rec, e)
	}

	return nil
}

// RegisterFamily registers every prefixed member of root's family.
func RegisterFamily[D dimension.Marker, K kind.Marker](r *Registry, quantity string, root unit.Of[D, K]) error {
	return Register(r, quantity, root.Family()...)
}

// addLocked appends a unit; r.mu must be held for writing.
func (r *Registry) addLocked(rec *record, u unit.Unit, c unit.Conversion) error {
	known, err := rec.clash(u, c, nil)
	if err != nil || known {
		return err
	}
	r.insertLocked(rec, rec.entry(u, c))

	return nil
}

// clash compares u against the registered units and the pending batch. It
// reports true for an identical unit and ErrDuplicateUnit when a name is
// taken with another definition.
func (rec *record) clash(u unit.Unit, c unit.Conversion, pending []Entry) (bool, error) {
	long := strings.ToLower(u.LongName())
	for _, list := range [][]Entry{rec.units, pending} {
		for _, e := range list {
			sameLong := strings.ToLower(e.Unit.LongName()) == long
			samePrint := e.Unit.PrintName() == u.PrintName()
			if !sameLong && !samePrint {
				continue
			}
			if sameLong && samePrint && e.Conversion == c {
				return true, nil
			}
			return false, errors.Wrapf(ErrDuplicateUnit, "%s: %s (%s) clashes with %s (%s)",
				rec.spec.Name, u.LongName(), u.PrintName(), e.Unit.LongName(), e.Unit.PrintName())
		}
	}

	return false, nil
}

func (rec *record) entry(u unit.Unit, c unit.Conversion) Entry {
	return Entry{
		Quantity:   rec.spec.Name,
		Dimension:  rec.spec.Dimension,
		Kind:       rec.spec.Kind,
		Unit:       u,
		Conversion: c,
	}
}

// insertLocked indexes e; r.mu must be held for writing.
func (r *Registry) insertLocked(rec *record, e Entry) {
	u, c := e.Unit, e.Conversion
	long := strings.ToLower(u.LongName())
	rec.units = append(rec.units, e)
	r.byPrint[u.PrintName()] = append(r.byPrint[u.PrintName()], e)
	r.byLong[long] = append(r.byLong[long], e)
	r.log.Debug("unit registered",
		zap.String("quantity", rec.spec.Name),
		zap.String("unit", u.PrintName()),
		zap.Float64("factor", c.Factor),
		zap.Float64("offset", c.Offset),
	)
}

// Quantity returns the named quantity.
func (r *Registry) Quantity(name string) (QuantitySpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.quantities[name]
	if !ok {
		return QuantitySpec{}, errors.Wrapf(ErrUnknownQuantity, "%q", name)
	}

	return rec.spec, nil
}

// Quantities lists all quantities sorted by name.
func (r *Registry) Quantities() []QuantitySpec {
	r.mu.RLock()
	out := make([]QuantitySpec, 0, len(r.quantities))
	for _, rec := range r.quantities {
		out = append(out, rec.spec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// Units lists the units of a quantity sorted by factor, then print name.
func (r *Registry) Units(quantity string) ([]Entry, error) {
	r.mu.RLock()
	rec, ok := r.quantities[quantity]
	if !ok {
		r.mu.RUnlock()
		return nil, errors.Wrapf(ErrUnknownQuantity, "%q", quantity)
	}
	out := make([]Entry, len(rec.units))
	copy(out, rec.units)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Conversion.Factor != out[j].Conversion.Factor {
			return out[i].Conversion.Factor < out[j].Conversion.Factor
		}
		return out[i].Unit.PrintName() < out[j].Unit.PrintName()
	})

	return out, nil
}

// Lookup returns every unit whose print name equals id or whose long name
// equals id ignoring case, sorted by quantity name.
func (r *Registry) Lookup(id string) ([]Entry, error) {
	r.mu.RLock()
	var out []Entry
	seen := make(map[[2]string]bool)
	for _, list := range [][]Entry{r.byPrint[id], r.byLong[strings.ToLower(id)]} {
		for _, e := range list {
			k := [2]string{e.Quantity, e.Unit.LongName()}
			if !seen[k] {
				seen[k] = true
				out = append(out, e)
			}
		}
	}
	r.mu.RUnlock()

	if len(out) == 0 {
		return nil, errors.Wrapf(ErrUnknownUnit, "%q", id)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })

	return out, nil
}
