// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - JSON, YAML and CBOR encodings of the base magnitude only. Dimension and
//     kind live in the type, not in the payload.
//
// Format:
//   - Real scalars encode as a number at their own width, so a decode of an
//     encode reproduces the value bit for bit.
//   - Complex scalars encode as [re, im].

package quantity

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// payload returns the encodable form of q's magnitude.
func (q Quantity[T, D, K]) payload() any {
	switch x := any(q.v).(type) {
	case complex64:
		return []float32{real(x), imag(x)}
	case complex128:
		return []float64{real(x), imag(x)}
	}

	return q.v
}

// decode fills q from an unmarshal function targeting the payload shape.
func (q *Quantity[T, D, K]) decode(unmarshal func(any) error) error {
	switch p := any(&q.v).(type) {
	case *float32, *float64:
		if err := unmarshal(p); err != nil {
			return decodeError(err)
		}
	case *complex64:
		var a []float32
		if err := unmarshal(&a); err != nil {
			return decodeError(err)
		}
		if len(a) != 2 {
			return errors.Wrapf(ErrDecode, "complex needs [re, im], got %d numbers", len(a))
		}
		*p = complex(a[0], a[1])
	case *complex128:
		var a []float64
		if err := unmarshal(&a); err != nil {
			return decodeError(err)
		}
		if len(a) != 2 {
			return errors.Wrapf(ErrDecode, "complex needs [re, im], got %d numbers", len(a))
		}
		*p = complex(a[0], a[1])
	}

	return nil
}

// MarshalJSON implements json.Marshaler. NaN and infinities are rejected by
// encoding/json.
func (q Quantity[T, D, K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.payload())
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity[T, D, K]) UnmarshalJSON(b []byte) error {
	return q.decode(func(v any) error { return json.Unmarshal(b, v) })
}

// MarshalYAML implements yaml.Marshaler.
func (q Quantity[T, D, K]) MarshalYAML() (any, error) {
	return q.payload(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity[T, D, K]) UnmarshalYAML(n *yaml.Node) error {
	return q.decode(n.Decode)
}

// MarshalCBOR implements cbor.Marshaler.
func (q Quantity[T, D, K]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(q.payload())
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (q *Quantity[T, D, K]) UnmarshalCBOR(b []byte) error {
	return q.decode(func(v any) error { return cbor.Unmarshal(b, v) })
}

// decodeError wraps ErrDecode so both errors.Is variants match, keeping the
// cause in the message.
func decodeError(err error) error {
	return errors.Wrapf(ErrDecode, "%v", err)
}
