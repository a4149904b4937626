package reducer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/numeric"
)

// DefaultModulus is the modulus used by both presets.
const DefaultModulus int64 = 7

// Config holds the reducer's constants.
type Config struct {
	Modulus int64
}

// Validate rejects a non-positive modulus.
func (c Config) Validate() error {
	if c.Modulus <= 0 {
		return fmt.Errorf("%w: modulus must be positive, got %d", domain.ErrInvalidArgument, c.Modulus)
	}
	return nil
}

// Reducer is pure: it never reads anything besides its three inputs.
type Reducer struct {
	cfg Config
	num numeric.Context
}

// New returns a reducer for cfg evaluated under num.
func New(cfg Config, num numeric.Context) (*Reducer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Reducer{cfg: cfg, num: num}, nil
}

// Raw returns the unreduced product of the three primary values.
func (r *Reducer) Raw(
	power domain.PowerResult,
	frequency domain.FrequencyResult,
	fraction domain.FractionResult,
) decimal.Decimal {
	return r.num.Mul(power.DistributedPower, frequency.Frequency, fraction.FractionPower)
}

// Reduce returns floor(raw) mod Modulus.
func (r *Reducer) Reduce(
	power domain.PowerResult,
	frequency domain.FrequencyResult,
	fraction domain.FractionResult,
) domain.StateCode {
	// Modulus was validated in New, so FloorMod cannot fail here.
	code, _ := r.num.FloorMod(r.Raw(power, frequency, fraction), r.cfg.Modulus)
	return domain.StateCode(code)
}

// Compile-time assertion that Reducer implements domain.StateReducer.
var _ domain.StateReducer = (*Reducer)(nil)
