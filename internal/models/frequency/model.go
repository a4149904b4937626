package frequency

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
	Reciprocal bool // base frequency is 1/Base
	Stability  decimal.Decimal
	Strict     bool // require time delta > 0
}

// Validate rejects a zero reciprocal base and negative constants.
func (c Config) Validate() error {
	if c.Base.IsNegative() || c.Stability.IsNegative() {
		return fmt.Errorf("%w: frequency constants must be non-negative (base=%s stability=%s)",
			domain.ErrInvalidArgument, c.Base, c.Stability)
	}
	if c.Reciprocal && c.Base.IsZero() {
		return fmt.Errorf("%w: reciprocal frequency base must be non-zero", domain.ErrInvalidArgument)
	}
	return nil
}

// Model is safe for reuse; frequency and stability are fixed at construction.
type Model struct {
	cfg       Config
	frequency decimal.Decimal
	stability decimal.Decimal
}

// New returns a frequency model for cfg evaluated under num.
func New(cfg Config, num numeric.Context) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := cfg.Base
	if cfg.Reciprocal {
		var err error
		if base, err = num.Reciprocal(cfg.Base); err != nil {
			return nil, fmt.Errorf("frequency base: %w", err)
		}
	}
	return &Model{
		cfg:       cfg,
		frequency: num.Mul(base, cfg.Stability),
		stability: num.Mul(cfg.Stability, hundred),
	}, nil
}

// Config returns the constants the model was built with.
func (m *Model) Config() Config { return m.cfg }

// Compute validates timeDelta and returns the calibrated frequency.
func (m *Model) Compute(timeDelta decimal.Decimal) (domain.FrequencyResult, error) {
	if m.cfg.Strict && !timeDelta.IsPositive() {
		return domain.FrequencyResult{}, fmt.Errorf("%w: time delta must be positive, got %s",
			domain.ErrInvalidArgument, timeDelta)
	}
	if timeDelta.IsNegative() {
		return domain.FrequencyResult{}, fmt.Errorf("%w: time delta must be non-negative, got %s",
			domain.ErrInvalidArgument, timeDelta)
	}
	return domain.FrequencyResult{
		Frequency:        m.frequency,
		StabilityPercent: m.stability,
	}, nil
}

// Compile-time assertion that Model implements domain.FrequencyModel.
var _ domain.FrequencyModel = (*Model)(nil)
