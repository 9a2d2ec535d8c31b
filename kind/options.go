// SPDX-License-Identifier: MIT

package kind

import "go.uber.org/zap"

type options struct {
	log *zap.Logger
}

// Option configures a Table.
type Option func(*options)

// WithLogger routes rule declarations to l at debug level.
// A nil logger panics (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("kind: WithLogger: nil logger")
	}
	return func(o *options) { o.log = l }
}

func gatherOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
