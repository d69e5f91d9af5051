package dto

import (
	"time"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePersonRequest defines the data needed to start tracking a counterparty.
// Amount accepts a JSON number or string and is checked for positivity by the service.
type CreatePersonRequest struct {
	Name         string           `json:"name" binding:"required,max=200"`
	Type         domain.EntryType `json:"type" binding:"required,entrytype"`
	Amount       decimal.Decimal  `json:"amount"`
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"` // Annual %, empty means 0
	CurrencyCode string           `json:"currencyCode,omitempty" binding:"omitempty,max=10"`
	Note         string           `json:"note,omitempty" binding:"max=1000"`
}

// LedgerAmountRequest is the body of collect and add.
type LedgerAmountRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Note            string          `json:"note,omitempty" binding:"max=1000"`
	ExpectedVersion *int64          `json:"expectedVersion,omitempty"`
}

// CollectFullRequest is the body of collect-all. An empty body is allowed.
type CollectFullRequest struct {
	Note            string `json:"note,omitempty" binding:"max=1000"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// ListPeopleParams defines query parameters for listing people.
type ListPeopleParams struct {
	Type   string `form:"type" binding:"omitempty,entrytype"`
	Search string `form:"search"`
	Sort   string `form:"sort" binding:"omitempty,oneof=amount name"`
}

type NoteResponse struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID          string           `json:"personID"`
	Name              string           `json:"name"`
	Type              domain.EntryType `json:"type"`
	Balance           decimal.Decimal  `json:"balance"`
	OriginalAmount    decimal.Decimal  `json:"originalAmount"`
	InterestRate      decimal.Decimal  `json:"interestRate"`
	CurrencyCode      string           `json:"currencyCode"`
	Notes             []NoteResponse   `json:"notes"`
	Version           int64            `json:"version"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	AccruedInterest   *decimal.Decimal `json:"accruedInterest,omitempty"`
	FormattedBalance  string           `json:"formattedBalance,omitempty"`
	FormattedInterest string           `json:"formattedInterest,omitempty"`
	RowColor          string           `json:"rowColor,omitempty"`
}

// PersonDetailResponse is a person together with its history.
type PersonDetailResponse struct {
	PersonResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// LedgerActionResponse is returned by create, collect, collect-all and add.
type LedgerActionResponse struct {
	Transaction     TransactionResponse      `json:"transaction"`
	Person          *PersonResponse          `json:"person,omitempty"`
	CompletedRecord *CompletedRecordResponse `json:"completedRecord,omitempty"`
	Completed       bool                     `json:"completed"`
}

type CurrencyTotalsResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	TotalDebts     decimal.Decimal `json:"totalDebts"`
	TotalLoans     decimal.Decimal `json:"totalLoans"`
	Net            decimal.Decimal `json:"net"`
	FormattedDebts string          `json:"formattedDebts"`
	FormattedLoans string          `json:"formattedLoans"`
	FormattedNet   string          `json:"formattedNet"`
}

// SummaryResponse holds per-currency totals; there is no cross-currency total.
type SummaryResponse struct {
	Currencies []CurrencyTotalsResponse `json:"currencies"`
}

func toNoteResponses(notes []domain.Note) []NoteResponse {
	res := make([]NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = NoteResponse{Text: n.Text, Date: n.Date}
	}
	return res
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:       p.PersonID,
		Name:           p.Name,
		Type:           p.Type,
		Balance:        p.Balance,
		OriginalAmount: p.OriginalAmount,
		InterestRate:   p.InterestRate,
		CurrencyCode:   p.CurrencyCode,
		Notes:          toNoteResponses(p.Notes),
		Version:        p.Version,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPersonViewResponse adds the computed display fields.
func ToPersonViewResponse(v *domain.PersonView) PersonResponse {
	res := ToPersonResponse(&v.Person)
	interest := v.AccruedInterest
	res.AccruedInterest = &interest
	res.FormattedBalance = v.FormattedBalance
	res.FormattedInterest = v.FormattedInterest
	res.RowColor = v.RowColor
	return res
}

func ToListPersonResponse(views []domain.PersonView) []PersonResponse {
	res := make([]PersonResponse, len(views))
	for i := range views {
		res[i] = ToPersonViewResponse(&views[i])
	}
	return res
}

func ToPersonDetailResponse(d *domain.PersonDetail) PersonDetailResponse {
	return PersonDetailResponse{
		PersonResponse: ToPersonViewResponse(&d.PersonView),
		Transactions:   ToTransactionResponses(d.Transactions),
	}
}

func ToLedgerActionResponse(r *domain.LedgerActionResult) LedgerActionResponse {
	res := LedgerActionResponse{
		Transaction: ToTransactionResponse(&r.Transaction),
		Completed:   r.CompletedRecord != nil,
	}
	if r.Person != nil {
		p := ToPersonResponse(r.Person)
		res.Person = &p
	}
	if r.CompletedRecord != nil {
		cr := ToCompletedRecordResponse(r.CompletedRecord)
		res.CompletedRecord = &cr
	}
	return res
}

// ToSummaryResponse formats every total with its currency's display rules via format.
func ToSummaryResponse(totals []domain.CurrencyTotals, format func(amount decimal.Decimal, code string) string) SummaryResponse {
	res := SummaryResponse{Currencies: make([]CurrencyTotalsResponse, len(totals))}
	for i, t := range totals {
		res.Currencies[i] = CurrencyTotalsResponse{
			CurrencyCode:   t.CurrencyCode,
			TotalDebts:     t.TotalDebts,
			TotalLoans:     t.TotalLoans,
			Net:            t.Net,
			FormattedDebts: format(t.TotalDebts, t.CurrencyCode),
			FormattedLoans: format(t.TotalLoans, t.CurrencyCode),
			FormattedNet:   format(t.Net, t.CurrencyCode),
		}
	}
	return res
}
