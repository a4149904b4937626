package profile

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"qsvault/internal/domain"
)

// fileProfile is the YAML shape of an override file. Decimals are written as
// strings so they keep their exact value; absent fields keep the base
// preset's value.
//
//	base: fixed
//	name: fixed-wide
//	filter:
//	  divisor: "10"
//	range:
//	  end: 64
type fileProfile struct {
	Base      string `yaml:"base"`
	Name      string `yaml:"name"`
	Precision *int32 `yaml:"precision"`
	Power     *struct {
		Base       *string `yaml:"base"`
		Efficiency *string `yaml:"efficiency"`
	} `yaml:"power"`
	Frequency *struct {
		Base       *string `yaml:"base"`
		Reciprocal *bool   `yaml:"reciprocal"`
		Stability  *string `yaml:"stability"`
		Strict     *bool   `yaml:"strict"`
	} `yaml:"frequency"`
	Fraction *struct {
		CoefficientA *string `yaml:"coefficient_a"`
		CoefficientB *string `yaml:"coefficient_b"`
		UseInput     *bool   `yaml:"use_input"`
		Normalizer   *string `yaml:"normalizer"`
	} `yaml:"fraction"`
	Reducer *struct {
		Modulus *int64 `yaml:"modulus"`
	} `yaml:"reducer"`
	Filter *struct {
		Divisor    *string `yaml:"divisor"`
		Multiplier *string `yaml:"multiplier"`
		Threshold  *int64  `yaml:"threshold"`
	} `yaml:"filter"`
	Range *struct {
		Start *int `yaml:"start"`
		End   *int `yaml:"end"`
	} `yaml:"range"`
}

// LoadFile reads a YAML override file.
func LoadFile(path string) (Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p, err := Parse(b)
	if err != nil {
		return Profile{}, fmt.Errorf("profile file %s: %w", path, err)
	}
	return p, nil
}

// Parse applies YAML overrides to the preset named by "base" (default
// linear) and validates the result.
func Parse(data []byte) (Profile, error) {
	var f fileProfile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Profile{}, err
	}
	p, err := Lookup(f.Base)
	if err != nil {
		return Profile{}, err
	}
	if f.Name != "" {
		p.Name = domain.ProfileName(f.Name)
	}
	if f.Precision != nil {
		p.Precision = *f.Precision
	}

	var errs []error
	setDec := func(dst *decimal.Decimal, field string, v *string) {
		if v == nil {
			return
		}
		d, err := decimal.NewFromString(*v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %q is not a decimal", domain.ErrInvalidArgument, field, *v))
			return
		}
		*dst = d
	}
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}

	if s := f.Power; s != nil {
		setDec(&p.Power.Base, "power.base", s.Base)
		setDec(&p.Power.Efficiency, "power.efficiency", s.Efficiency)
	}
	if s := f.Frequency; s != nil {
		setDec(&p.Frequency.Base, "frequency.base", s.Base)
		setDec(&p.Frequency.Stability, "frequency.stability", s.Stability)
		setBool(&p.Frequency.Reciprocal, s.Reciprocal)
		setBool(&p.Frequency.Strict, s.Strict)
	}
	if s := f.Fraction; s != nil {
		setDec(&p.Fraction.CoefficientA, "fraction.coefficient_a", s.CoefficientA)
		setDec(&p.Fraction.CoefficientB, "fraction.coefficient_b", s.CoefficientB)
		setDec(&p.Fraction.Normalizer, "fraction.normalizer", s.Normalizer)
		setBool(&p.Fraction.UseInput, s.UseInput)
	}
	if s := f.Reducer; s != nil && s.Modulus != nil {
		p.Reducer.Modulus = *s.Modulus
	}
	if s := f.Filter; s != nil {
		setDec(&p.Filter.Divisor, "filter.divisor", s.Divisor)
		setDec(&p.Filter.Multiplier, "filter.multiplier", s.Multiplier)
		if s.Threshold != nil {
			p.Filter.Threshold = *s.Threshold
		}
	}
	if s := f.Range; s != nil {
		if s.Start != nil {
			p.Range.Start = *s.Start
		}
		if s.End != nil {
			p.Range.End = *s.End
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
