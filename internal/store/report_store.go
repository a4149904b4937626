package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"qsvault/internal/crypto"
	"qsvault/internal/domain"
)

// ErrSealedReport is returned when a sealed report is loaded without a
// passphrase.
var ErrSealedReport = errors.New("report is sealed; passphrase required")

// ReportFileStore writes reports as JSON files.
type ReportFileStore struct {
	passphrase string
	kdf        crypto.KDFParams
}

// NewReportFileStore returns a store. An empty passphrase writes plain JSON.
func NewReportFileStore(passphrase string, kdf crypto.KDFParams) *ReportFileStore {
	return &ReportFileStore{passphrase: passphrase, kdf: kdf}
}

// SaveReport writes report to path with 0600 permissions.
func (s *ReportFileStore) SaveReport(path string, report domain.TransactionReport) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		sealed, err := crypto.Seal(s.passphrase, raw, s.kdf)
		if err != nil {
			return fmt.Errorf("seal report: %w", err)
		}
		raw = sealed
	}
	return writeFile(path, raw, 0o600)
}

// LoadReport reads a report written by SaveReport.
func (s *ReportFileStore) LoadReport(path string) (domain.TransactionReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.TransactionReport{}, err
	}
	if crypto.IsSealed(raw) {
		if s.passphrase == "" {
			return domain.TransactionReport{}, ErrSealedReport
		}
		if raw, err = crypto.Open(s.passphrase, raw); err != nil {
			return domain.TransactionReport{}, err
		}
	}
	var report domain.TransactionReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return domain.TransactionReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}
	return report, nil
}

// Compile-time assertion that ReportFileStore implements domain.ReportStore.
var _ domain.ReportStore = (*ReportFileStore)(nil)
