package services

import (
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency comes first: the ledger and export format through it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Ledger = NewLedgerService(
		repos.PersonRepo,
		repos.TransactionRepo,
		repos.CompletedRecordRepo,
		container.Currency,
	)
	container.Reminder = NewReminderService(repos.ReminderRepo)
	container.Export = NewExportService(repos.PersonRepo, repos.TransactionRepo, repos.CompletedRecordRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
