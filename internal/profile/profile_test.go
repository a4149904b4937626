package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsvault/internal/domain"
	"qsvault/internal/profile"
)

func TestPresets_Valid(t *testing.T) {
	presets := profile.Presets()
	require.Len(t, presets, 2)
	for _, p := range presets {
		assert.NoErrorf(t, p.Validate(), "preset %s", p.Name)
		assert.Equal(t, 18, p.Range.Start)
		assert.Equal(t, 48, p.Range.End)
		assert.Equal(t, int64(7), p.Reducer.Modulus)
		assert.True(t, p.Filter.Divisor.Equal(decimal.NewFromInt(9410000)))
		assert.True(t, p.Filter.Multiplier.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, int64(2), p.Filter.Threshold)
	}
}

func TestPresets_Differ(t *testing.T) {
	lin := profile.LinearProfile()
	fix := profile.FixedProfile()

	assert.True(t, lin.Frequency.Strict)
	assert.False(t, fix.Frequency.Strict)
	assert.True(t, lin.Fraction.UseInput)
	assert.False(t, fix.Fraction.UseInput)
	assert.True(t, lin.Power.Factor().Equal(decimal.RequireFromString("0.752")))
	assert.True(t, fix.Power.Factor().Equal(decimal.RequireFromString("380")))
}

func TestLookup(t *testing.T) {
	p, err := profile.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, profile.Linear, p.Name)

	p, err = profile.Lookup(" FIXED ")
	require.NoError(t, err)
	assert.Equal(t, profile.Fixed, p.Name)

	_, err = profile.Lookup("quadratic")
	assert.ErrorIs(t, err, profile.ErrUnknownProfile)
}

func TestParse_OverridesOnBase(t *testing.T) {
	p, err := profile.Parse([]byte(`
base: fixed
name: fixed-wide
precision: 30
power:
  efficiency: "0.9"
filter:
  divisor: "10"
  threshold: 5
range:
  end: 64
`))
	require.NoError(t, err)

	assert.Equal(t, domain.ProfileName("fixed-wide"), p.Name)
	assert.Equal(t, int32(30), p.Precision)
	assert.True(t, p.Power.Base.Equal(decimal.RequireFromString("400")))
	assert.True(t, p.Power.Efficiency.Equal(decimal.RequireFromString("0.9")))
	assert.True(t, p.Filter.Divisor.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(5), p.Filter.Threshold)
	assert.Equal(t, 18, p.Range.Start)
	assert.Equal(t, 64, p.Range.End)
	assert.False(t, p.Frequency.Strict)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad decimal":    "power:\n  efficiency: abc\n",
		"zero divisor":   "filter:\n  divisor: \"0\"\n",
		"empty range":    "range:\n  start: 10\n  end: 10\n",
		"low precision":  "precision: 4\n",
		"zero modulus":   "reducer:\n  modulus: 0\n",
		"zero normalize": "fraction:\n  normalizer: \"0\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := profile.Parse([]byte(doc))
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	_, err := profile.Parse([]byte("base: nope\n"))
	assert.ErrorIs(t, err, profile.ErrUnknownProfile)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: custom\nfrequency:\n  strict: false\n"), 0o600))

	p, err := profile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileName("custom"), p.Name)
	assert.False(t, p.Frequency.Strict)
	assert.True(t, p.Fraction.UseInput)

	_, err = profile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
