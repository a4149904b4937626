package frequency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsvault/internal/domain"
	"qsvault/internal/models/frequency"
	"qsvault/internal/numeric"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strictConfig() frequency.Config {
	return frequency.Config{
		Base:       dec("0.000001"),
		Reciprocal: true,
		Stability:  dec("0.9999"),
		Strict:     true,
	}
}

func permissiveConfig() frequency.Config {
	return frequency.Config{
		Base:      dec("0.0001"),
		Stability: dec("0.9999"),
	}
}

func TestStrict_ReciprocalBase(t *testing.T) {
	m, err := frequency.New(strictConfig(), numeric.Default())
	require.NoError(t, err)

	res, err := m.Compute(dec("0.1"))
	require.NoError(t, err)
	assert.True(t, res.Frequency.Equal(dec("999900")), res.Frequency.String())
	assert.True(t, res.StabilityPercent.Equal(dec("99.99")))
}

func TestStrict_RejectsNonPositiveDelta(t *testing.T) {
	m, err := frequency.New(strictConfig(), numeric.Default())
	require.NoError(t, err)

	_, err = m.Compute(decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = m.Compute(dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestPermissive_AcceptsZeroAndIgnoresDelta(t *testing.T) {
	m, err := frequency.New(permissiveConfig(), numeric.Default())
	require.NoError(t, err)

	zero, err := m.Compute(decimal.Zero)
	require.NoError(t, err)
	large, err := m.Compute(dec("12345.678"))
	require.NoError(t, err)

	assert.True(t, zero.Frequency.Equal(dec("0.00009999")), zero.Frequency.String())
	assert.True(t, zero.Frequency.Equal(large.Frequency))

	_, err = m.Compute(dec("-0.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNew_ZeroReciprocalBase(t *testing.T) {
	cfg := strictConfig()
	cfg.Base = decimal.Zero
	_, err := frequency.New(cfg, numeric.Default())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCompute_Idempotent(t *testing.T) {
	m, err := frequency.New(strictConfig(), numeric.Default())
	require.NoError(t, err)

	a, err := m.Compute(dec("2.5"))
	require.NoError(t, err)
	b, err := m.Compute(dec("2.5"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
