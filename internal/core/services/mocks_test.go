package services_test

import (
	"context"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// fakeTx stands in for a live pgx transaction; repositories are mocked so it is never used.
type fakeTx struct {
	pgx.Tx
}

// --- Mock PersonRepository ---
type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPersonRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPersonRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPersonRepository) FindPersonByID(ctx context.Context, userID, personID string) (*domain.Person, error) {
	args := m.Called(ctx, userID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) ListPeople(ctx context.Context, userID string, filter domain.PersonFilter) ([]domain.Person, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Person), args.Error(1)
}

func (m *MockPersonRepository) FindPersonForUpdate(ctx context.Context, tx pgx.Tx, userID, personID string) (*domain.Person, error) {
	args := m.Called(ctx, tx, userID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Person), args.Error(1)
}

func (m *MockPersonRepository) SavePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error {
	args := m.Called(ctx, tx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) UpdatePersonInTx(ctx context.Context, tx pgx.Tx, person domain.Person) error {
	args := m.Called(ctx, tx, person)
	return args.Error(0)
}

func (m *MockPersonRepository) DeletePersonInTx(ctx context.Context, tx pgx.Tx, userID, personID string) error {
	args := m.Called(ctx, tx, userID, personID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, personID *string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, personID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByPersonID(ctx context.Context, userID, personID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Mock CompletedRecordRepository ---
type MockCompletedRecordRepository struct {
	mock.Mock
}

func (m *MockCompletedRecordRepository) ListCompletedRecords(ctx context.Context, userID string) ([]domain.CompletedRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompletedRecord), args.Error(1)
}

func (m *MockCompletedRecordRepository) SaveCompletedRecordInTx(ctx context.Context, tx pgx.Tx, record domain.CompletedRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

// --- Mock ReminderRepository ---
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) ListReminders(ctx context.Context, userID string) ([]domain.Reminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	args := m.Called(ctx, userID, reminderID)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReader struct {
	mock.Mock
}

func (m *MockCurrencyReader) GetCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, userID, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyReader) Registry(ctx context.Context, userID string) (*utils.CurrencyRegistry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.CurrencyRegistry), args.Error(1)
}

func (m *MockCurrencyReader) FormatAmount(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (string, error) {
	args := m.Called(ctx, userID, currencyCode, amount)
	return args.String(0), args.Error(1)
}
