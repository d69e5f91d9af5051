package pgsql

import (
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PersonRepo:          newPgxPersonRepository(dbPool),
		TransactionRepo:     newPgxTransactionRepository(dbPool),
		CompletedRecordRepo: newPgxCompletedRecordRepository(dbPool),
		ReminderRepo:        newPgxReminderRepository(dbPool),
		CurrencyRepo:        newPgxCurrencyRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
	}
}
