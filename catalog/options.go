// SPDX-License-Identifier: MIT

package catalog

import "go.uber.org/zap"

type options struct {
	log *zap.Logger
}

// Option configures Apply.
type Option func(*options)

// WithLogger reports applied catalogues to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("catalog: WithLogger: nil logger")
	}
	return func(o *options) { o.log = l }
}
