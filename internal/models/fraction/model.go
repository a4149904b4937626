package fraction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/numeric"
)

// Config holds the model's constants.
type Config struct {
	CoefficientA decimal.Decimal
	CoefficientB decimal.Decimal // unused when UseInput is set
	UseInput     bool
	Normalizer   decimal.Decimal
}

// Validate rejects a zero normalizer.
func (c Config) Validate() error {
	if c.Normalizer.IsZero() {
		return fmt.Errorf("%w: fraction normalizer must be non-zero", domain.ErrInvalidArgument)
	}
	return nil
}

type Model struct {
	cfg Config
	num numeric.Context
}

// New returns a fraction model for cfg evaluated under num.
func New(cfg Config, num numeric.Context) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{cfg: cfg, num: num}, nil
}

// Config returns the constants the model was built with.
func (m *Model) Config() Config { return m.cfg }

// Compute returns the fractional and normalized power for input.
func (m *Model) Compute(input decimal.Decimal) (domain.FractionResult, error) {
	var fp decimal.Decimal
	if m.cfg.UseInput {
		if input.IsNegative() {
			return domain.FractionResult{}, fmt.Errorf("%w: fraction input must be non-negative, got %s",
				domain.ErrInvalidArgument, input)
		}
		fp = m.num.Mul(m.cfg.CoefficientA, input)
	} else {
		fp = m.num.Mul(m.cfg.CoefficientA, m.cfg.CoefficientB)
	}

	norm, err := m.num.Div(fp, m.cfg.Normalizer)
	if err != nil {
		return domain.FractionResult{}, fmt.Errorf("normalize fraction power: %w", err)
	}
	return domain.FractionResult{FractionPower: fp, NormalizedPower: norm}, nil
}

// Compile-time assertion that Model implements domain.FractionModel.
var _ domain.FractionModel = (*Model)(nil)
