package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PersonRepo          PersonRepositoryWithTx
	TransactionRepo     TransactionRepositoryFacade
	CompletedRecordRepo CompletedRecordRepositoryFacade
	ReminderRepo        ReminderRepositoryFacade
	CurrencyRepo        CurrencyRepositoryFacade
	UserRepo            UserRepositoryFacade
}
