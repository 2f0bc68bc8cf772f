// Package timeline turns raw performance entries into validity-filtered
// normalized points and condenses them into displayable series.
package timeline

import "github.com/okian/piste/internal/domain/wind"

// Default aggregation constants: the legal wind-assistance limit and the
// point count above which an unscoped series condenses to one
// best-of-year entry per year.
const (
	DefaultWindLimitMPS      = wind.LegalLimitMPS
	DefaultCondenseThreshold = 10
)

type options struct {
	windLimitMPS      float64
	condenseThreshold int
}

// Option applies a configuration option to the aggregation.
type Option func(*options)

// WithWindLimit overrides the legal wind limit in m/s.
func WithWindLimit(limit float64) Option {
	return func(o *options) {
		if limit > 0 {
			o.windLimitMPS = limit
		}
	}
}

// WithCondenseThreshold overrides the density threshold above which an
// unscoped series condenses to best-of-year points.
func WithCondenseThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.condenseThreshold = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		windLimitMPS:      DefaultWindLimitMPS,
		condenseThreshold: DefaultCondenseThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
