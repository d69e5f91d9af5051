package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV_WritesAllSections(t *testing.T) {
	ctx := context.Background()
	personRepo := new(MockPersonRepository)
	txnRepo := new(MockTransactionRepository)
	recordRepo := new(MockCompletedRecordRepository)
	svc := services.NewExportService(personRepo, txnRepo, recordRepo)

	created := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	personRepo.On("ListPeople", ctx, "u1", domain.PersonFilter{}).Return([]domain.Person{
		{Name: "Alice", Type: domain.Debt, Balance: dec("120.5"), InterestRate: dec("10"), AuditFields: domain.AuditFields{CreatedAt: created}},
	}, nil).Once()

	next := "page-2"
	txnRepo.On("ListTransactions", ctx, "u1", (*string)(nil), 100, (*string)(nil)).Return([]domain.Transaction{
		{PersonName: "Alice", Type: domain.TxnPartialCollect, Amount: dec("20"), BalanceAfter: dec("120.5"), Note: "paid, partly",
			CreatedAt: time.Date(2025, 3, 2, 15, 4, 0, 0, time.UTC)},
	}, &next, nil).Once()
	txnRepo.On("ListTransactions", ctx, "u1", (*string)(nil), 100, &next).Return([]domain.Transaction{
		{PersonName: "Alice", Type: domain.TxnCreated, Amount: dec("140.5"), BalanceAfter: dec("140.5"),
			CreatedAt: created},
	}, nil, nil).Once()

	recordRepo.On("ListCompletedRecords", ctx, "u1").Return([]domain.CompletedRecord{
		{Name: "Bob", Type: domain.Loan, OriginalAmount: dec("50"), CompletedAt: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)},
	}, nil).Once()

	data, fileName, err := svc.ExportCSV(ctx, "u1", time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "loan-ledger-export-2025-03-05.csv", fileName)
	expected := "Name,Type,Balance,Interest Rate,Created Date\n" +
		"Alice,debt,120.5,10%,\"Mar 1, 2025\"\n" +
		"\nTransaction History\n" +
		"Date,Person,Type,Amount,Balance After,Note\n" +
		"\"Mar 2, 2025, 3:04 PM\",Alice,partial_collect,20,120.5,\"paid, partly\"\n" +
		"\"Mar 1, 2025, 8:00 AM\",Alice,created,140.5,140.5,\n" +
		"\nCompleted Records\n" +
		"Name,Original Type,Original Amount,Completed Date\n" +
		"Bob,loan,50,\"Feb 14, 2025\"\n"
	assert.Equal(t, expected, string(data))

	personRepo.AssertExpectations(t)
	txnRepo.AssertExpectations(t)
	recordRepo.AssertExpectations(t)
}

func TestExportCSV_EmptyLedgerKeepsHeaders(t *testing.T) {
	ctx := context.Background()
	personRepo := new(MockPersonRepository)
	txnRepo := new(MockTransactionRepository)
	recordRepo := new(MockCompletedRecordRepository)
	svc := services.NewExportService(personRepo, txnRepo, recordRepo)

	personRepo.On("ListPeople", ctx, "u1", domain.PersonFilter{}).Return([]domain.Person{}, nil).Once()
	txnRepo.On("ListTransactions", ctx, "u1", (*string)(nil), 100, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()
	recordRepo.On("ListCompletedRecords", ctx, "u1").Return([]domain.CompletedRecord{}, nil).Once()

	data, _, err := svc.ExportCSV(ctx, "u1", time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Name,Type,Balance,Interest Rate,Created Date\n"+
		"\nTransaction History\nDate,Person,Type,Amount,Balance After,Note\n"+
		"\nCompleted Records\nName,Original Type,Original Amount,Completed Date\n", string(data))
}

func TestExportCSV_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	personRepo := new(MockPersonRepository)
	svc := services.NewExportService(personRepo, new(MockTransactionRepository), new(MockCompletedRecordRepository))

	personRepo.On("ListPeople", ctx, "u1", domain.PersonFilter{}).Return(nil, assert.AnError).Once()

	_, _, err := svc.ExportCSV(ctx, "u1", time.Now())

	assert.ErrorIs(t, err, assert.AnError)
}
