package fraction_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsvault/internal/domain"
	"qsvault/internal/models/fraction"
	"qsvault/internal/numeric"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestUseInput(t *testing.T) {
	m, err := fraction.New(fraction.Config{
		CoefficientA: dec("0.5"),
		UseInput:     true,
		Normalizer:   dec("11.0"),
	}, numeric.Default())
	require.NoError(t, err)

	res, err := m.Compute(dec("22"))
	require.NoError(t, err)
	assert.True(t, res.FractionPower.Equal(dec("11")))
	assert.True(t, res.NormalizedPower.Equal(dec("1")), res.NormalizedPower.String())

	_, err = m.Compute(dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestConstantsOnly_IgnoresInput(t *testing.T) {
	m, err := fraction.New(fraction.Config{
		CoefficientA: dec("1.5"),
		CoefficientB: dec("0.3"),
		Normalizer:   dec("11.0"),
	}, numeric.Default())
	require.NoError(t, err)

	a, err := m.Compute(dec("18"))
	require.NoError(t, err)
	// Negative input is ignored in this mode.
	b, err := m.Compute(dec("-7"))
	require.NoError(t, err)

	assert.True(t, a.FractionPower.Equal(dec("0.45")))
	assert.True(t, a.FractionPower.Equal(b.FractionPower))

	// 0.45 / 11 rounded to 50 significant digits.
	want := "0.040909090909090909090909090909090909090909090909091"
	assert.Equal(t, want, a.NormalizedPower.String())
}

func TestNew_ZeroNormalizer(t *testing.T) {
	_, err := fraction.New(fraction.Config{CoefficientA: dec("1")}, numeric.Default())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
