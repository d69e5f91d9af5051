package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/loan_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a currency service over the user's custom currencies.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, userID string, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	code := strings.TrimSpace(req.CurrencyCode)
	if code != strings.ToUpper(code) || len(code) < 2 || len(code) > 10 {
		return nil, validationError("currency code must be 2 to 10 uppercase characters")
	}
	if req.Decimals == nil || *req.Decimals < 0 || *req.Decimals > 18 {
		return nil, validationError("decimals must be between 0 and 18")
	}
	symbol := strings.TrimSpace(req.Symbol)
	name := strings.TrimSpace(req.Name)
	if symbol == "" || name == "" {
		return nil, validationError("symbol and name are required")
	}

	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       symbol,
		Name:         name,
		Decimals:     *req.Decimals,
		Custom:       true,
		UserID:       userID,
		CreatedAt:    s.Now(),
	}
	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save custom currency", slog.String("currency_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Custom currency created",
		slog.String("currency_code", code),
		slog.Bool("overrides_builtin", utils.IsBuiltinCurrency(code)))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, userID, currencyCode string) (*domain.Currency, error) {
	registry, err := s.Registry(ctx, userID)
	if err != nil {
		return nil, err
	}
	currency := registry.Lookup(currencyCode)
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, userID string) ([]domain.Currency, error) {
	registry, err := s.Registry(ctx, userID)
	if err != nil {
		return nil, err
	}
	return registry.List(), nil
}

func (s *currencyService) Registry(ctx context.Context, userID string) (*utils.CurrencyRegistry, error) {
	custom, err := s.currencyRepo.ListCurrencies(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom currencies")
		return nil, err
	}
	if len(custom) == 0 {
		return utils.DefaultCurrencyRegistry, nil
	}
	return utils.NewCurrencyRegistry(custom), nil
}

func (s *currencyService) FormatAmount(ctx context.Context, userID, currencyCode string, amount decimal.Decimal) (string, error) {
	registry, err := s.Registry(ctx, userID)
	if err != nil {
		return "", err
	}
	return registry.FormatAmount(amount, currencyCode), nil
}
