// SPDX-License-Identifier: MIT

package registry

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvunits/unit"
	"github.com/katalvlaran/lvunits/value"
)

// Route is a resolved conversion between two registered units.
type Route struct {
	From Entry
	To   Entry
}

// Apply converts x along rt.
func Apply[T value.Scalar](rt Route, x T) T {
	return unit.Between(x, rt.From.Conversion, rt.To.Conversion)
}

// Route resolves from and to into a conversion. Both units must share a
// dimension and kind. When the identifiers belong to several quantities the
// readings must agree, otherwise ErrAmbiguousUnit is returned and
// InQuantity can pick one.
func (r *Registry) Route(from, to string, opts ...ConvertOption) (Route, error) {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}

	fs, err := r.Lookup(from)
	if err != nil {
		return Route{}, err
	}
	ts, err := r.Lookup(to)
	if err != nil {
		return Route{}, err
	}

	if o.quantity != "" {
		if _, err := r.Quantity(o.quantity); err != nil {
			return Route{}, err
		}
		if fs = inQuantity(fs, o.quantity); len(fs) == 0 {
			return Route{}, errors.Wrapf(ErrQuantityMismatch, "%s is not a unit of %s", from, o.quantity)
		}
		if ts = inQuantity(ts, o.quantity); len(ts) == 0 {
			return Route{}, errors.Wrapf(ErrQuantityMismatch, "%s is not a unit of %s", to, o.quantity)
		}
	}

	var routes []Route
	for _, f := range fs {
		for _, t := range ts {
			if f.Dimension == t.Dimension && f.Kind == t.Kind {
				routes = append(routes, Route{From: f, To: t})
			}
		}
	}
	if len(routes) == 0 {
		return Route{}, errors.WithHint(
			errors.Wrapf(ErrIncompatibleUnits, "%s (%s) and %s (%s)", from, quantities(fs), to, quantities(ts)),
			"units convert only within one dimension and kind",
		)
	}

	best := routes[0]
	for _, rt := range routes {
		if rt.From.Conversion != best.From.Conversion || rt.To.Conversion != best.To.Conversion {
			return Route{}, errors.WithHint(
				errors.Wrapf(ErrAmbiguousUnit, "%s -> %s", from, to),
				"name the quantity, one of: "+quantities(fs),
			)
		}
	}
	for _, rt := range routes {
		if rt.From.Quantity == rt.To.Quantity {
			return rt, nil
		}
	}

	return best, nil
}

// Convert converts x from one unit to another.
func (r *Registry) Convert(x float64, from, to string, opts ...ConvertOption) (float64, error) {
	rt, err := r.Route(from, to, opts...)
	if err != nil {
		return 0, err
	}

	return Apply(rt, x), nil
}

func inQuantity(es []Entry, q string) []Entry {
	var out []Entry
	for _, e := range es {
		if e.Quantity == q {
			out = append(out, e)
		}
	}

	return out
}

func quantities(es []Entry) string {
	names := make([]string, 0, len(es))
	for _, e := range es {
		names = append(names, e.Quantity)
	}

	return strings.Join(names, ", ")
}
