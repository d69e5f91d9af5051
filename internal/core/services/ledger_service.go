package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/SscSPs/loan_ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// defaultFullCollectionNote is the note of a collect-all without an explicit note.
const defaultFullCollectionNote = "Full collection"

type ledgerService struct {
	BaseService
	personRepo          portsrepo.PersonRepositoryWithTx
	transactionRepo     portsrepo.TransactionRepositoryFacade
	completedRecordRepo portsrepo.CompletedRecordRepositoryFacade
	currencySvc         portssvc.CurrencyReaderSvc
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock replaces the wall clock, mainly for tests.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates the service that owns people, their history and the archive.
func NewLedgerService(
	personRepo portsrepo.PersonRepositoryWithTx,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	completedRecordRepo portsrepo.CompletedRecordRepositoryFacade,
	currencySvc portssvc.CurrencyReaderSvc,
	options ...LedgerServiceOption,
) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		personRepo:          personRepo,
		transactionRepo:     transactionRepo,
		completedRecordRepo: completedRecordRepo,
		currencySvc:         currencySvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func validationError(msg string) error {
	return fmt.Errorf("%s: %w", msg, apperrors.ErrValidation)
}

// Column limits: amounts are NUMERIC(38, 18), interest rates NUMERIC(9, 4).
const (
	amountScale = 18
	rateScale   = 4
)

var (
	amountLimit = decimal.New(1, 38-amountScale)
	rateLimit   = decimal.New(1, 9-rateScale)
)

// fitsColumn reports whether v is stored without rounding or overflow.
func fitsColumn(v decimal.Decimal, scale int32, limit decimal.Decimal) bool {
	return v.Equal(v.Truncate(scale)) && v.Abs().LessThan(limit)
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationError("amount must be greater than zero")
	}
	if !fitsColumn(amount, amountScale, amountLimit) {
		return validationError(fmt.Sprintf("amount must be below %s with at most %d decimal places", amountLimit, amountScale))
	}
	return nil
}

func validateInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return validationError("interest rate cannot be negative")
	}
	if !fitsColumn(rate, rateScale, rateLimit) {
		return validationError(fmt.Sprintf("interest rate must be below %s with at most %d decimal places", rateLimit, rateScale))
	}
	return nil
}

func (s *ledgerService) CreatePerson(ctx context.Context, userID string, req dto.CreatePersonRequest) (*domain.LedgerActionResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}
	if !req.Type.IsValid() {
		return nil, validationError("type must be debt or loan")
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	rate := decimal.Zero
	if req.InterestRate != nil {
		rate = *req.InterestRate
	}
	if err := validateInterestRate(rate); err != nil {
		return nil, err
	}
	currencyCode := utils.NormalizeCurrencyCode(req.CurrencyCode)
	if currencyCode == "" {
		currencyCode = domain.DefaultCurrencyCode
	}

	now := s.Now()
	note := strings.TrimSpace(req.Note)
	person := domain.Person{
		PersonID:       uuid.NewString(),
		UserID:         userID,
		Name:           name,
		Type:           req.Type,
		Balance:        req.Amount,
		OriginalAmount: req.Amount,
		InterestRate:   rate,
		CurrencyCode:   currencyCode,
		Version:        1,
		AuditFields:    domain.NewAuditFields(now),
	}
	person.Notes = person.WithNote(note, now)

	txnNote := note
	if txnNote == "" {
		txnNote = fmt.Sprintf("Created %s for %s", person.Type, person.Name)
	}
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		PersonID:      person.PersonID,
		PersonName:    person.Name,
		Type:          domain.TxnCreated,
		Amount:        req.Amount,
		BalanceAfter:  req.Amount,
		EntryType:     person.Type,
		CurrencyCode:  currencyCode,
		Note:          txnNote,
		CreatedAt:     now,
	}

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.personRepo.SavePersonInTx(ctx, tx, person); err != nil {
			return err
		}
		return s.transactionRepo.SaveTransactionInTx(ctx, tx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create person", slog.String("person_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Person created",
		slog.String("person_id", person.PersonID),
		slog.String("type", string(person.Type)),
		slog.String("currency", currencyCode))
	return &domain.LedgerActionResult{Transaction: txn, Person: &person}, nil
}

func (s *ledgerService) Collect(ctx context.Context, userID, personID string, req dto.LedgerAmountRequest) (*domain.LedgerActionResult, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	return s.applyAction(ctx, userID, personID, accounting.ActionCollect, fixedAmount(req.Amount), strings.TrimSpace(req.Note), req.ExpectedVersion)
}

func (s *ledgerService) CollectFull(ctx context.Context, userID, personID string, req dto.CollectFullRequest) (*domain.LedgerActionResult, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		note = defaultFullCollectionNote
	}
	wholeBalance := func(p domain.Person) decimal.Decimal { return p.Balance }
	return s.applyAction(ctx, userID, personID, accounting.ActionCollect, wholeBalance, note, req.ExpectedVersion)
}

func (s *ledgerService) AddAmount(ctx context.Context, userID, personID string, req dto.LedgerAmountRequest) (*domain.LedgerActionResult, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	return s.applyAction(ctx, userID, personID, accounting.ActionAdd, fixedAmount(req.Amount), strings.TrimSpace(req.Note), req.ExpectedVersion)
}

func fixedAmount(amount decimal.Decimal) func(domain.Person) decimal.Decimal {
	return func(domain.Person) decimal.Decimal { return amount }
}

// applyAction runs one balance transition against the locked person row: the history entry is
// appended, then the person is either updated or archived and deleted. All of it commits together.
func (s *ledgerService) applyAction(
	ctx context.Context,
	userID, personID string,
	action accounting.Action,
	amountFor func(domain.Person) decimal.Decimal,
	note string,
	expectedVersion *int64,
) (*domain.LedgerActionResult, error) {
	var result *domain.LedgerActionResult

	err := s.inTx(ctx, func(tx pgx.Tx) error {
		person, err := s.personRepo.FindPersonForUpdate(ctx, tx, userID, personID)
		if err != nil {
			return err
		}
		if expectedVersion != nil && *expectedVersion != person.Version {
			return fmt.Errorf("person %s is at version %d, expected %d: %w", personID, person.Version, *expectedVersion, apperrors.ErrConflict)
		}

		amount := amountFor(*person)
		transition, err := accounting.Apply(action, person.Balance, amount, person.Type)
		if err != nil {
			return err
		}
		if !fitsColumn(transition.BalanceAfter, amountScale, amountLimit) {
			return validationError(fmt.Sprintf("resulting balance must be below %s", amountLimit))
		}

		now := s.Now()
		before := transition.BalanceBefore
		previousType := transition.PreviousType
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			PersonID:      person.PersonID,
			PersonName:    person.Name,
			Type:          transition.Kind,
			Amount:        amount,
			BalanceBefore: &before,
			BalanceAfter:  transition.BalanceAfter,
			EntryType:     transition.NewType,
			PreviousType:  &previousType,
			CurrencyCode:  person.CurrencyCode,
			Note:          note,
			CreatedAt:     now,
		}
		if err := s.transactionRepo.SaveTransactionInTx(ctx, tx, txn); err != nil {
			return err
		}

		if transition.Completed() {
			record := domain.NewCompletedRecord(uuid.NewString(), *person, now)
			if err := s.completedRecordRepo.SaveCompletedRecordInTx(ctx, tx, record); err != nil {
				return err
			}
			if err := s.personRepo.DeletePersonInTx(ctx, tx, userID, person.PersonID); err != nil {
				return err
			}
			result = &domain.LedgerActionResult{Transaction: txn, CompletedRecord: &record}
			return nil
		}

		updated := *person
		updated.Balance = transition.BalanceAfter
		updated.Type = transition.NewType
		updated.Notes = person.WithNote(note, now)
		updated.UpdatedAt = now
		if err := s.personRepo.UpdatePersonInTx(ctx, tx, updated); err != nil {
			return err
		}
		updated.Version++
		result = &domain.LedgerActionResult{Transaction: txn, Person: &updated}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Ledger action failed",
			slog.String("person_id", personID),
			slog.String("action", string(action)))
		return nil, err
	}

	s.LogInfo(ctx, "Ledger action applied",
		slog.String("person_id", personID),
		slog.String("action", string(action)),
		slog.String("kind", string(result.Transaction.Type)))
	return result, nil
}

// inTx runs fn in a database transaction, rolling back on any error.
func (s *ledgerService) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.personRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := s.personRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back ledger transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return s.personRepo.Commit(ctx, tx)
}

func (s *ledgerService) GetPerson(ctx context.Context, userID, personID string) (*domain.PersonDetail, error) {
	person, err := s.personRepo.FindPersonByID(ctx, userID, personID)
	if err != nil {
		return nil, err
	}
	registry, err := s.currencySvc.Registry(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.FindTransactionsByPersonID(ctx, userID, personID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load person history", slog.String("person_id", personID))
		return nil, err
	}
	return &domain.PersonDetail{
		PersonView:   s.view(*person, registry, s.Now(), 0, 1),
		Transactions: txns,
	}, nil
}

func (s *ledgerService) ListPeople(ctx context.Context, userID string, params dto.ListPeopleParams) ([]domain.PersonView, error) {
	filter := domain.PersonFilter{
		Search: strings.TrimSpace(params.Search),
		SortBy: domain.PersonSort(params.Sort),
	}
	if params.Type != "" {
		t := domain.EntryType(params.Type)
		if !t.IsValid() {
			return nil, validationError("type must be debt or loan")
		}
		filter.Type = &t
	}

	people, err := s.personRepo.ListPeople(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list people")
		return nil, err
	}
	registry, err := s.currencySvc.Registry(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Row colours are graded within each polarity, as debts and loans are listed separately.
	totals := map[domain.EntryType]int{}
	for _, p := range people {
		totals[p.Type]++
	}
	seen := map[domain.EntryType]int{}
	now := s.Now()
	views := make([]domain.PersonView, len(people))
	for i, p := range people {
		views[i] = s.view(p, registry, now, seen[p.Type], totals[p.Type])
		seen[p.Type]++
	}
	return views, nil
}

func (s *ledgerService) view(p domain.Person, registry *utils.CurrencyRegistry, now time.Time, index, total int) domain.PersonView {
	interest := accounting.AccruedInterest(p.Balance, p.InterestRate, p.CreatedAt, now)
	return domain.PersonView{
		Person:            p,
		AccruedInterest:   interest,
		FormattedBalance:  registry.FormatAmount(p.Balance, p.CurrencyCode),
		FormattedInterest: registry.FormatAmount(interest, p.CurrencyCode),
		RowColor:          utils.RowColor(p.Type, index, total),
	}
}

func (s *ledgerService) Summary(ctx context.Context, userID string) ([]domain.CurrencyTotals, error) {
	people, err := s.personRepo.ListPeople(ctx, userID, domain.PersonFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load people for summary")
		return nil, err
	}

	byCode := map[string]*domain.CurrencyTotals{}
	for _, p := range people {
		t, ok := byCode[p.CurrencyCode]
		if !ok {
			t = &domain.CurrencyTotals{CurrencyCode: p.CurrencyCode}
			byCode[p.CurrencyCode] = t
		}
		switch p.Type {
		case domain.Debt:
			t.TotalDebts = t.TotalDebts.Add(p.Balance)
		case domain.Loan:
			t.TotalLoans = t.TotalLoans.Add(p.Balance)
		}
	}

	out := make([]domain.CurrencyTotals, 0, len(byCode))
	for _, t := range byCode {
		t.Net = t.TotalDebts.Sub(t.TotalLoans)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	var personID, nextToken *string
	if params.PersonID != "" {
		personID = &params.PersonID
	}
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}
	txns, next, err := s.transactionRepo.ListTransactions(ctx, userID, personID, params.Limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, err
	}
	return txns, next, nil
}

func (s *ledgerService) ListCompletedRecords(ctx context.Context, userID string) ([]domain.CompletedRecord, error) {
	records, err := s.completedRecordRepo.ListCompletedRecords(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list completed records")
		return nil, err
	}
	return records, nil
}
