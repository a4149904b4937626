package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/numeric"
)

// IndexRange is the half-open range [Start, End) of candidate indices.
type IndexRange struct {
	Start int
	End   int
}

// Len returns the number of candidate indices.
func (r IndexRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// FilterConfig holds the inclusion filter constants:
//
//	floor(i / Divisor * Multiplier) <= Threshold
type FilterConfig struct {
	Divisor    decimal.Decimal
	Multiplier decimal.Decimal
	Threshold  int64
}

// Validate rejects a zero divisor.
func (c FilterConfig) Validate() error {
	if c.Divisor.IsZero() {
		return fmt.Errorf("%w: filter divisor must be non-zero", domain.ErrInvalidArgument)
	}
	return nil
}

// Filter decides whether an index takes part in a run.
type Filter struct {
	cfg       FilterConfig
	num       numeric.Context
	threshold decimal.Decimal
}

// NewFilter returns a filter for cfg evaluated under num.
func NewFilter(cfg FilterConfig, num numeric.Context) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Filter{cfg: cfg, num: num, threshold: decimal.NewFromInt(cfg.Threshold)}, nil
}

// Accept reports whether index i passes the filter.
func (f *Filter) Accept(i int) bool {
	q, err := f.num.Div(decimal.NewFromInt(int64(i)), f.cfg.Divisor)
	if err != nil {
		return false
	}
	return f.num.Mul(q, f.cfg.Multiplier).Floor().LessThanOrEqual(f.threshold)
}
