package services

import (
	"context"
	"time"
)

// ExportSvcFacade produces the downloadable CSV of a user's ledger.
type ExportSvcFacade interface {
	// ExportCSV returns the CSV document and its file name for the given export time.
	ExportCSV(ctx context.Context, userID string, now time.Time) ([]byte, string, error)
}
