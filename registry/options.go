// SPDX-License-Identifier: MIT

package registry

import "go.uber.org/zap"

type options struct {
	log *zap.Logger
}

// Option configures a Registry.
type Option func(*options)

// WithLogger sends registration events to l at debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("registry: WithLogger: nil logger")
	}
	return func(o *options) { o.log = l }
}

// ConvertOption narrows a conversion.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	quantity string
}

// InQuantity restricts both units to the named quantity.
func InQuantity(name string) ConvertOption {
	return func(o *convertOptions) { o.quantity = name }
}
