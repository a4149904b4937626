package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"qsvault/internal/domain"
	"qsvault/internal/models/fraction"
	"qsvault/internal/models/frequency"
	"qsvault/internal/models/power"
	"qsvault/internal/numeric"
	"qsvault/internal/reducer"
	"qsvault/internal/services/transaction"
)

// Preset names.
const (
	Linear domain.ProfileName = "linear"
	Fixed  domain.ProfileName = "fixed"
)

// ErrUnknownProfile is returned by Lookup for a name with no preset.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile carries every constant of the pipeline.
type Profile struct {
	Name      domain.ProfileName
	Precision int32
	Power     power.Config
	Frequency frequency.Config
	Fraction  fraction.Config
	Reducer   reducer.Config
	Filter    transaction.FilterConfig
	Range     transaction.IndexRange
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// shared returns the constants common to both presets.
func shared() Profile {
	return Profile{
		Precision: numeric.DefaultPrecision,
		Reducer:   reducer.Config{Modulus: reducer.DefaultModulus},
		Filter: transaction.FilterConfig{
			Divisor:    dec("9410000"),
			Multiplier: dec("2"),
			Threshold:  2,
		},
		Range: transaction.IndexRange{Start: 18, End: 48},
	}
}

// LinearProfile returns the default preset.
func LinearProfile() Profile {
	p := shared()
	p.Name = Linear
	p.Power = power.Config{Base: dec("1"), Efficiency: dec("0.752")}
	p.Frequency = frequency.Config{
		Base:       dec("0.000001"),
		Reciprocal: true,
		Stability:  dec("0.9999"),
		Strict:     true,
	}
	p.Fraction = fraction.Config{
		CoefficientA: dec("0.5"),
		UseInput:     true,
		Normalizer:   dec("11.0"),
	}
	return p
}

// FixedProfile returns the constant-driven preset.
func FixedProfile() Profile {
	p := shared()
	p.Name = Fixed
	p.Power = power.Config{Base: dec("400.00"), Efficiency: dec("0.95")}
	p.Frequency = frequency.Config{
		Base:      dec("0.0001"),
		Stability: dec("0.9999"),
	}
	p.Fraction = fraction.Config{
		CoefficientA: dec("1.5"),
		CoefficientB: dec("0.3"),
		Normalizer:   dec("11.0"),
	}
	return p
}

// Default returns the linear preset.
func Default() Profile { return LinearProfile() }

// Presets returns every preset sorted by name.
func Presets() []Profile {
	return []Profile{FixedProfile(), LinearProfile()}
}

// Lookup returns the preset with the given name (case-insensitive).
// An empty name selects the default.
func Lookup(name string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default(), nil
	}
	for _, p := range Presets() {
		if string(p.Name) == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w %q", ErrUnknownProfile, name)
}

// Numeric returns the arithmetic context for the profile's precision.
func (p Profile) Numeric() (numeric.Context, error) {
	return numeric.New(p.Precision)
}

// Validate checks every constant.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: profile name is required", domain.ErrInvalidArgument)
	}
	if _, err := p.Numeric(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	checks := []struct {
		what string
		fn   func() error
	}{
		{"power", p.Power.Validate},
		{"frequency", p.Frequency.Validate},
		{"fraction", p.Fraction.Validate},
		{"reducer", p.Reducer.Validate},
		{"filter", p.Filter.Validate},
	}
	for _, c := range checks {
		if err := c.fn(); err != nil {
			return fmt.Errorf("profile %s: %s: %w", p.Name, c.what, err)
		}
	}
	if p.Range.Len() == 0 {
		return fmt.Errorf("%w: empty index range [%d, %d)", domain.ErrInvalidArgument, p.Range.Start, p.Range.End)
	}
	return nil
}

// TransactionConfig returns the runner's slice of the profile.
func (p Profile) TransactionConfig() transaction.Config {
	return transaction.Config{
		Profile:   p.Name,
		Precision: p.Precision,
		Range:     p.Range,
		Filter:    p.Filter,
	}
}
