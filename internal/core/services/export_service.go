package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/gocarina/gocsv"
)

const (
	exportDateLayout     = "Jan 2, 2006"
	exportDateTimeLayout = "Jan 2, 2006, 3:04 PM"
	// exportPageSize is the page size used to drain the transaction history.
	exportPageSize = 100
)

type personExportRow struct {
	Name         string `csv:"Name"`
	Type         string `csv:"Type"`
	Balance      string `csv:"Balance"`
	InterestRate string `csv:"Interest Rate"`
	CreatedDate  string `csv:"Created Date"`
}

type transactionExportRow struct {
	Date         string `csv:"Date"`
	Person       string `csv:"Person"`
	Type         string `csv:"Type"`
	Amount       string `csv:"Amount"`
	BalanceAfter string `csv:"Balance After"`
	Note         string `csv:"Note"`
}

type completedRecordExportRow struct {
	Name           string `csv:"Name"`
	OriginalType   string `csv:"Original Type"`
	OriginalAmount string `csv:"Original Amount"`
	CompletedDate  string `csv:"Completed Date"`
}

type exportService struct {
	BaseService
	personRepo          portsrepo.PersonReader
	transactionRepo     portsrepo.TransactionReader
	completedRecordRepo portsrepo.CompletedRecordReader
}

// NewExportService creates the CSV export over a user's people, history and archive.
func NewExportService(
	personRepo portsrepo.PersonReader,
	transactionRepo portsrepo.TransactionReader,
	completedRecordRepo portsrepo.CompletedRecordReader,
) portssvc.ExportSvcFacade {
	return &exportService{
		personRepo:          personRepo,
		transactionRepo:     transactionRepo,
		completedRecordRepo: completedRecordRepo,
	}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// ExportFileName is the download name of an export taken at now.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("loan-ledger-export-%s.csv", now.UTC().Format("2006-01-02"))
}

func (s *exportService) ExportCSV(ctx context.Context, userID string, now time.Time) ([]byte, string, error) {
	people, err := s.personRepo.ListPeople(ctx, userID, domain.PersonFilter{})
	if err != nil {
		s.LogError(ctx, err, "Export failed to load people")
		return nil, "", err
	}
	txns, err := s.allTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Export failed to load transactions")
		return nil, "", err
	}
	records, err := s.completedRecordRepo.ListCompletedRecords(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Export failed to load completed records")
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := writeSection(&buf, "", personRows(people)); err != nil {
		return nil, "", err
	}
	if err := writeSection(&buf, "Transaction History", transactionRows(txns)); err != nil {
		return nil, "", err
	}
	if err := writeSection(&buf, "Completed Records", completedRecordRows(records)); err != nil {
		return nil, "", err
	}

	s.LogInfo(ctx, "Ledger exported",
		slog.Int("people", len(people)),
		slog.Int("transactions", len(txns)),
		slog.Int("completed_records", len(records)))
	return buf.Bytes(), ExportFileName(now), nil
}

func (s *exportService) allTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var all []domain.Transaction
	var token *string
	for {
		page, next, err := s.transactionRepo.ListTransactions(ctx, userID, nil, exportPageSize, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == nil {
			return all, nil
		}
		token = next
	}
}

// writeSection appends a titled block. Every block after the first is preceded by a blank line.
func writeSection(buf *bytes.Buffer, title string, rows any) error {
	if title != "" {
		buf.WriteString("\n" + title + "\n")
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csv.NewWriter(buf))); err != nil {
		return fmt.Errorf("error writing CSV section %q: %w", title, err)
	}
	return nil
}

func personRows(people []domain.Person) []personExportRow {
	rows := make([]personExportRow, len(people))
	for i, p := range people {
		rows[i] = personExportRow{
			Name:         p.Name,
			Type:         string(p.Type),
			Balance:      p.Balance.String(),
			InterestRate: p.InterestRate.String() + "%",
			CreatedDate:  p.CreatedAt.UTC().Format(exportDateLayout),
		}
	}
	return rows
}

func transactionRows(txns []domain.Transaction) []transactionExportRow {
	rows := make([]transactionExportRow, len(txns))
	for i, t := range txns {
		rows[i] = transactionExportRow{
			Date:         t.CreatedAt.UTC().Format(exportDateTimeLayout),
			Person:       t.PersonName,
			Type:         string(t.Type),
			Amount:       t.Amount.String(),
			BalanceAfter: t.BalanceAfter.String(),
			Note:         t.Note,
		}
	}
	return rows
}

func completedRecordRows(records []domain.CompletedRecord) []completedRecordExportRow {
	rows := make([]completedRecordExportRow, len(records))
	for i, r := range records {
		rows[i] = completedRecordExportRow{
			Name:           r.Name,
			OriginalType:   string(r.Type),
			OriginalAmount: r.OriginalAmount.String(),
			CompletedDate:  r.CompletedAt.UTC().Format(exportDateLayout),
		}
	}
	return rows
}
