package power

import (
	"fmt"

	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/numeric"
)

var hundred = decimal.NewFromInt(100)

// Config holds the model's constants.
type Config struct {
	Base       decimal.Decimal
	Efficiency decimal.Decimal
}

// Factor is the multiplier applied to every input.
func (c Config) Factor() decimal.Decimal { return c.Base.Mul(c.Efficiency) }

// Validate rejects negative constants.
func (c Config) Validate() error {
	if c.Base.IsNegative() || c.Efficiency.IsNegative() {
		return fmt.Errorf("%w: power constants must be non-negative (base=%s efficiency=%s)",
			domain.ErrInvalidArgument, c.Base, c.Efficiency)
	}
	return nil
}

// Model is safe for reuse; it holds no state besides its constants.
type Model struct {
	cfg    Config
	num    numeric.Context
	factor decimal.Decimal
}

// New returns a power model for cfg evaluated under num.
func New(cfg Config, num numeric.Context) *Model {
	return &Model{cfg: cfg, num: num, factor: num.Round(cfg.Factor())}
}

// Config returns the constants the model was built with.
func (m *Model) Config() Config { return m.cfg }

// Compute returns the distributed power for input.
func (m *Model) Compute(input decimal.Decimal) (domain.PowerResult, error) {
	if input.IsNegative() {
		return domain.PowerResult{}, fmt.Errorf("%w: power input must be non-negative, got %s",
			domain.ErrInvalidArgument, input)
	}
	return domain.PowerResult{
		DistributedPower:  m.num.Mul(input, m.factor),
		EfficiencyPercent: m.num.Mul(m.cfg.Efficiency, hundred),
	}, nil
}

// Compile-time assertion that Model implements domain.PowerModel.
var _ domain.PowerModel = (*Model)(nil)
