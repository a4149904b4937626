package interfaces

import domaintypes "qsvault/internal/domain/types"

// ReportStore exports finished reports and reads them back.
type ReportStore interface {
	SaveReport(path string, report domaintypes.TransactionReport) error
	LoadReport(path string) (domaintypes.TransactionReport, error)
}
