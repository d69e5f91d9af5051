package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/loan_ledger/internal/apperrors"
	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/handlers"
	"github.com/SscSPs/loan_ledger/internal/middleware"
	"github.com/SscSPs/loan_ledger/internal/platform/config"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

const testJWTSecret = "handlers-test-secret"

type HandlersTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ledger      *MockLedgerService
	reminder    *MockReminderService
	currency    *MockCurrencyService
	export      *MockExportService
	user        *MockUserService
	token       *MockTokenService
	googleOAuth *MockGoogleOAuthService
	userID      string
	bearer      string
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(middleware.RegisterValidators())
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.ledger = new(MockLedgerService)
	suite.reminder = new(MockReminderService)
	suite.currency = new(MockCurrencyService)
	suite.export = new(MockExportService)
	suite.user = new(MockUserService)
	suite.token = new(MockTokenService)
	suite.googleOAuth = new(MockGoogleOAuthService)

	cfg := &config.Config{
		IsProduction:   true,
		JWTSecret:      testJWTSecret,
		LoginRateLimit: "100-M",
	}
	services := &portssvc.ServiceContainer{
		Ledger:      suite.ledger,
		Reminder:    suite.reminder,
		Currency:    suite.currency,
		Export:      suite.export,
		User:        suite.user,
		Token:       suite.token,
		GoogleOAuth: suite.googleOAuth,
	}

	suite.router = gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, nil))

	suite.userID = "user-1"
	token, _, err := utils.GenerateJWT(suite.userID, testJWTSecret, time.Hour, "loan-ledger")
	suite.Require().NoError(err)
	suite.bearer = "Bearer " + token
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ledger.AssertExpectations(suite.T())
	suite.reminder.AssertExpectations(suite.T())
	suite.currency.AssertExpectations(suite.T())
	suite.export.AssertExpectations(suite.T())
	suite.user.AssertExpectations(suite.T())
	suite.token.AssertExpectations(suite.T())
	suite.googleOAuth.AssertExpectations(suite.T())
}

// --- Helpers ---

func (suite *HandlersTestSuite) do(method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set("Authorization", suite.bearer)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (suite *HandlersTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.decode(w, &resp)
	return resp.Error
}

func decimalEq(want string) func(decimal.Decimal) bool {
	expected := decimal.RequireFromString(want)
	return func(d decimal.Decimal) bool { return d.Equal(expected) }
}

func (suite *HandlersTestSuite) samplePerson(balance string, version int64) *domain.Person {
	return &domain.Person{
		PersonID:       "person-1",
		UserID:         suite.userID,
		Name:           "Alice",
		Type:           domain.Debt,
		Balance:        decimal.RequireFromString(balance),
		OriginalAmount: decimal.NewFromInt(500),
		CurrencyCode:   "USD",
		Version:        version,
	}
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestProtectedRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/people", "", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Authorization header required", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestCreatePerson_Success() {
	person := suite.samplePerson("500", 1)
	suite.ledger.On("CreatePerson", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreatePersonRequest) bool {
		return req.Name == "Alice" && req.Type == domain.Debt && decimalEq("500")(req.Amount) && req.CurrencyCode == "USD"
	})).Return(&domain.LedgerActionResult{
		Transaction: domain.Transaction{
			TransactionID: "txn-1",
			PersonID:      person.PersonID,
			PersonName:    person.Name,
			Type:          domain.TxnCreated,
			Amount:        decimal.NewFromInt(500),
			BalanceAfter:  decimal.NewFromInt(500),
			EntryType:     domain.Debt,
			CurrencyCode:  "USD",
			Note:          "Created debt for Alice",
		},
		Person: person,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/people",
		`{"name":"Alice","type":"debt","amount":500,"currencyCode":"USD"}`, true)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.LedgerActionResponse
	suite.decode(w, &resp)
	suite.False(resp.Completed)
	suite.Require().NotNil(resp.Person)
	suite.Equal("person-1", resp.Person.PersonID)
	suite.Equal(domain.TxnCreated, resp.Transaction.Type)
	suite.True(resp.Transaction.BalanceAfter.Equal(decimal.NewFromInt(500)))
	suite.Nil(resp.Transaction.BalanceBefore)
}

func (suite *HandlersTestSuite) TestCreatePerson_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/people",
		`{"name":"Alice","type":"gift","amount":500}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "Invalid request")
	suite.ledger.AssertNotCalled(suite.T(), "CreatePerson", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestCreatePerson_ServiceValidationError() {
	validationErr := fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	suite.ledger.On("CreatePerson", mock.Anything, suite.userID, mock.Anything).Return(nil, validationErr).Once()

	w := suite.do(http.MethodPost, "/api/v1/people", `{"name":"Alice","type":"loan","amount":0}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(validationErr.Error(), suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestCollect_Partial() {
	before := decimal.NewFromInt(500)
	person := suite.samplePerson("300", 2)
	suite.ledger.On("Collect", mock.Anything, suite.userID, "person-1", mock.MatchedBy(func(req dto.LedgerAmountRequest) bool {
		return decimalEq("200")(req.Amount) && req.ExpectedVersion != nil && *req.ExpectedVersion == 1
	})).Return(&domain.LedgerActionResult{
		Transaction: domain.Transaction{
			TransactionID: "txn-2",
			PersonID:      "person-1",
			Type:          domain.TxnPartialCollect,
			Amount:        decimal.NewFromInt(200),
			BalanceBefore: &before,
			BalanceAfter:  decimal.NewFromInt(300),
			EntryType:     domain.Debt,
			CurrencyCode:  "USD",
		},
		Person: person,
	}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/people/person-1/collect", `{"amount":"200","expectedVersion":1}`, true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LedgerActionResponse
	suite.decode(w, &resp)
	suite.Equal(domain.TxnPartialCollect, resp.Transaction.Type)
	suite.Require().NotNil(resp.Transaction.BalanceBefore)
	suite.True(resp.Transaction.BalanceBefore.Equal(before))
	suite.Equal(int64(2), resp.Person.Version)
}

func (suite *HandlersTestSuite) TestCollect_StaleVersion() {
	suite.ledger.On("Collect", mock.Anything, suite.userID, "person-1", mock.Anything).
		Return(nil, fmt.Errorf("person person-1: %w", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPost, "/api/v1/people/person-1/collect", `{"amount":10,"expectedVersion":1}`, true)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestCollect_NotFound() {
	suite.ledger.On("Collect", mock.Anything, suite.userID, "missing", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/people/missing/collect", `{"amount":10}`, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestCollectAll_EmptyBodyArchives() {
	before := decimal.NewFromInt(500)
	suite.ledger.On("CollectFull", mock.Anything, suite.userID, "person-1", dto.CollectFullRequest{}).
		Return(&domain.LedgerActionResult{
			Transaction: domain.Transaction{
				TransactionID: "txn-3",
				PersonID:      "person-1",
				Type:          domain.TxnCompleted,
				Amount:        before,
				BalanceBefore: &before,
				BalanceAfter:  decimal.Zero,
				EntryType:     domain.Debt,
				CurrencyCode:  "USD",
				Note:          "Full collection",
			},
			CompletedRecord: &domain.CompletedRecord{
				RecordID:         "record-1",
				OriginalPersonID: "person-1",
				Name:             "Alice",
				Type:             domain.Debt,
				OriginalAmount:   before,
				CurrencyCode:     "USD",
			},
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/people/person-1/collect-all", "", true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LedgerActionResponse
	suite.decode(w, &resp)
	suite.True(resp.Completed)
	suite.Nil(resp.Person)
	suite.Require().NotNil(resp.CompletedRecord)
	suite.Equal("record-1", resp.CompletedRecord.RecordID)
	suite.Equal("Full collection", resp.Transaction.Note)
}

func (suite *HandlersTestSuite) TestAddAmount_Validation() {
	validationErr := fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	suite.ledger.On("AddAmount", mock.Anything, suite.userID, "person-1", mock.Anything).
		Return(nil, validationErr).Once()

	w := suite.do(http.MethodPost, "/api/v1/people/person-1/add", `{"amount":-5}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal(validationErr.Error(), suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestListPeople_PassesFilters() {
	view := domain.PersonView{
		Person:           *suite.samplePerson("1000", 1),
		AccruedInterest:  decimal.NewFromInt(10),
		FormattedBalance: "$1,000.00",
		RowColor:         "#ffebee",
	}
	suite.ledger.On("ListPeople", mock.Anything, suite.userID, dto.ListPeopleParams{Type: "debt", Search: "ali", Sort: "name"}).
		Return([]domain.PersonView{view}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/people?type=debt&search=ali&sort=name", "", true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.PersonResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 1)
	suite.Equal("$1,000.00", resp[0].FormattedBalance)
	suite.Equal("#ffebee", resp[0].RowColor)
}

func (suite *HandlersTestSuite) TestListPeople_InvalidSort() {
	w := suite.do(http.MethodGet, "/api/v1/people?sort=age", "", true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSummary_FormatsPerCurrency() {
	suite.ledger.On("Summary", mock.Anything, suite.userID).Return([]domain.CurrencyTotals{
		{CurrencyCode: "EUR", TotalDebts: decimal.NewFromInt(50), TotalLoans: decimal.NewFromInt(100), Net: decimal.NewFromInt(-50)},
		{CurrencyCode: "USD", TotalDebts: decimal.NewFromInt(1500), TotalLoans: decimal.Zero, Net: decimal.NewFromInt(1500)},
	}, nil).Once()
	suite.currency.On("Registry", mock.Anything, suite.userID).Return(utils.DefaultCurrencyRegistry, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/people/summary", "", true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.SummaryResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Currencies, 2)
	suite.Equal("EUR", resp.Currencies[0].CurrencyCode)
	suite.Equal("-€50.00", resp.Currencies[0].FormattedNet)
	suite.Equal("$1,500.00", resp.Currencies[1].FormattedDebts)
}

func (suite *HandlersTestSuite) TestListTransactions_ReturnsNextToken() {
	next := "token-2"
	suite.ledger.On("ListTransactions", mock.Anything, suite.userID, dto.ListTransactionsParams{Limit: 2}).
		Return([]domain.Transaction{{TransactionID: "txn-9"}, {TransactionID: "txn-8"}}, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=2", "", true)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListTransactionsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Transactions, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
}

func (suite *HandlersTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/transactions?limit=500", "", true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestReminders_CreateAndDelete() {
	date := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.reminder.On("CreateReminder", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateReminderRequest) bool {
		return req.PersonName == "Bob" && req.ReminderDate.Equal(date)
	})).Return(&domain.Reminder{ReminderID: "rem-1", UserID: suite.userID, PersonName: "Bob", ReminderDate: date}, nil).Once()
	suite.reminder.On("DeleteReminder", mock.Anything, suite.userID, "rem-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reminders", `{"personName":"Bob","reminderDate":"2025-04-01T00:00:00Z"}`, true)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = suite.do(http.MethodDelete, "/api/v1/reminders/rem-1", "", true)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestCurrencyFormat_InvalidAmount() {
	w := suite.do(http.MethodGet, "/api/v1/currencies/USD/format?amount=abc", "", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("amount must be a decimal number", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestExport_SetsDownloadHeaders() {
	csvBody := []byte("PEOPLE\nName\nAlice\n")
	suite.export.On("ExportCSV", mock.Anything, suite.userID, mock.AnythingOfType("time.Time")).
		Return(csvBody, "loan-ledger-export-2025-03-10.csv", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/export", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="loan-ledger-export-2025-03-10.csv"`, w.Header().Get("Content-Disposition"))
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Equal(string(csvBody), w.Body.String())
}

func (suite *HandlersTestSuite) TestMe() {
	suite.user.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Username: "alice", Name: "Alice"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.UserResponse
	suite.decode(w, &resp)
	suite.Equal("alice", resp.Username)
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.user.On("AuthenticateUser", mock.Anything, "alice", "wrong-password").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"wrong-password"}`, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid username or password", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: suite.userID, Username: "alice", Name: "Alice"}
	expiresAt := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)
	suite.user.On("AuthenticateUser", mock.Anything, "alice", "correct-horse").Return(user, nil).Once()
	suite.token.On("GenerateAccessToken", mock.Anything, user).Return("jwt-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"correct-horse"}`, false)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("jwt-token", resp.Token)
	suite.True(resp.ExpiresAt.Equal(expiresAt))
	suite.Equal("alice", resp.User.Username)
	suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (suite *HandlersTestSuite) TestRegister_Duplicate() {
	suite.user.On("CreateUser", mock.Anything, dto.CreateUserRequest{Username: "alice", Password: "password123", Name: "Alice"}).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/register", `{"username":"alice","password":"password123","name":"Alice"}`, false)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Username already taken", suite.errorMessage(w))
}

func (suite *HandlersTestSuite) TestGoogleLoginURL() {
	suite.googleOAuth.On("GenerateStateString", mock.Anything).Return("state-abc", nil).Once()
	suite.googleOAuth.On("GetGoogleLoginURL", mock.Anything, "state-abc").
		Return("https://accounts.google.com/o/oauth2/auth?state=state-abc").Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/google/login-url", "", false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.GoogleLoginURLResponse
	suite.decode(w, &resp)
	suite.Equal("state-abc", resp.State)
	suite.Contains(resp.URL, "state=state-abc")
}

func (suite *HandlersTestSuite) TestGoogleExchange_InvalidGrant() {
	suite.googleOAuth.On("ExchangeCodeForToken", mock.Anything, "stale-code").
		Return(nil, errors.New(`oauth2: "invalid_grant" "Bad Request"`)).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", `{"code":"stale-code"}`, false)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGoogleExchange_Unreachable() {
	suite.googleOAuth.On("ExchangeCodeForToken", mock.Anything, "code").
		Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", `{"code":"code"}`, false)

	suite.Equal(http.StatusGatewayTimeout, w.Code)
}

func (suite *HandlersTestSuite) TestGoogleExchange_Success() {
	token := (&oauth2.Token{AccessToken: "google-access"}).WithExtra(map[string]any{"id_token": "id-token"})
	user := &domain.User{UserID: suite.userID, Username: "google_sub-1", Name: "Alice"}
	expiresAt := time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)

	suite.googleOAuth.On("ExchangeCodeForToken", mock.Anything, "good-code").Return(token, nil).Once()
	suite.googleOAuth.On("ValidateGoogleIDToken", mock.Anything, "id-token").Return(&idtoken.Payload{
		Subject: "sub-1",
		Claims:  map[string]any{"email": "alice@example.com", "name": "Alice"},
	}, nil).Once()
	suite.user.On("FindOrCreateOAuthUser", mock.Anything, domain.ProviderGoogle, "sub-1", "alice@example.com", "Alice").
		Return(user, nil).Once()
	suite.token.On("GenerateAccessToken", mock.Anything, user).Return("app-jwt", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", `{"code":"good-code"}`, false)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.Equal("app-jwt", resp.Token)
	suite.Equal("google_sub-1", resp.User.Username)
}

func (suite *HandlersTestSuite) TestGoogleExchange_InvalidIDToken() {
	token := (&oauth2.Token{AccessToken: "google-access"}).WithExtra(map[string]any{"id_token": "forged"})
	suite.googleOAuth.On("ExchangeCodeForToken", mock.Anything, "code").Return(token, nil).Once()
	suite.googleOAuth.On("ValidateGoogleIDToken", mock.Anything, "forged").Return(nil, errors.New("idtoken: invalid signature")).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/google/exchange-code", `{"code":"code"}`, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}
