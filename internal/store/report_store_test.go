package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qsvault/internal/crypto"
	"qsvault/internal/domain"
	"qsvault/internal/store"
)

var cheap = crypto.KDFParams{Time: 1, MemoryKiB: 8, Threads: 1}

func sampleReport() domain.TransactionReport {
	return domain.TransactionReport{
		ID:        uuid.New(),
		Profile:   "linear",
		Sender:    "Alice",
		Receiver:  "Bob",
		Amount:    1_000_000,
		Timestamp: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Samples: []domain.QuantumSample{
			{
				Index:     18,
				StateCode: 1,
				Power:     decimal.RequireFromString("13.536"),
				Frequency: decimal.RequireFromString("999900"),
				Fraction:  decimal.RequireFromString("9"),
			},
		},
		Failures: []domain.SampleFailure{{Index: 30, Reason: "power: injected"}},
	}
}

func assertSameReport(t *testing.T, want, got domain.TransactionReport) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Sender, got.Sender)
	assert.Equal(t, want.Receiver, got.Receiver)
	assert.Equal(t, want.Amount, got.Amount)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	require.Len(t, got.Samples, len(want.Samples))
	for i := range want.Samples {
		assert.Equal(t, want.Samples[i].Index, got.Samples[i].Index)
		assert.Equal(t, want.Samples[i].StateCode, got.Samples[i].StateCode)
		assert.True(t, want.Samples[i].Power.Equal(got.Samples[i].Power))
	}
	require.Len(t, got.Failures, 1)
	assert.Equal(t, 30, got.Failures[0].Index)
	assert.Equal(t, "power: injected", got.Failures[0].Reason)
}

func TestReport_PlainRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	var rs domain.ReportStore = store.NewReportFileStore("", cheap)

	want := sampleReport()
	require.NoError(t, rs.SaveReport(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sender": "Alice"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := rs.LoadReport(path)
	require.NoError(t, err)
	assertSameReport(t, want, got)
}

func TestReport_SealedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.sealed")
	rs := store.NewReportFileStore("vault pass", cheap)

	want := sampleReport()
	require.NoError(t, rs.SaveReport(path, want))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Alice")

	got, err := rs.LoadReport(path)
	require.NoError(t, err)
	assertSameReport(t, want, got)

	_, err = store.NewReportFileStore("", cheap).LoadReport(path)
	assert.ErrorIs(t, err, store.ErrSealedReport)

	_, err = store.NewReportFileStore("other", cheap).LoadReport(path)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestReport_LoadMissing(t *testing.T) {
	_, err := store.NewReportFileStore("", cheap).LoadReport(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReport_OverwriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	rs := store.NewReportFileStore("", cheap)

	require.NoError(t, rs.SaveReport(path, sampleReport()))
	require.NoError(t, rs.SaveReport(path, sampleReport()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
