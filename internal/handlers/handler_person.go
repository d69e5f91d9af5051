package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/middleware"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// personHandler handles HTTP requests for people and their balance-changing actions.
type personHandler struct {
	ledgerService   portssvc.LedgerSvcFacade
	currencyService portssvc.CurrencyReaderSvc
	posthogClient   *utils.PosthogClientWrapper
}

func newPersonHandler(ls portssvc.LedgerSvcFacade, cs portssvc.CurrencyReaderSvc, ph *utils.PosthogClientWrapper) *personHandler {
	return &personHandler{
		ledgerService:   ls,
		currencyService: cs,
		posthogClient:   ph,
	}
}

// registerPersonRoutes registers routes related to people.
func registerPersonRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade, cs portssvc.CurrencyReaderSvc, ph *utils.PosthogClientWrapper) {
	h := newPersonHandler(ls, cs, ph)

	people := rg.Group("/people")
	{
		people.POST("", h.createPerson)
		people.GET("", h.listPeople)
		people.GET("/summary", h.summary)
		people.GET("/:personID", h.getPerson)
		people.POST("/:personID/collect", h.collect)
		people.POST("/:personID/collect-all", h.collectAll)
		people.POST("/:personID/add", h.addAmount)
	}
}

// createPerson godoc
// @Summary Start tracking a person
// @Description Creates a person with an opening debt or loan and records the "created" transaction
// @Tags people
// @Accept  json
// @Produce  json
// @Param   person body dto.CreatePersonRequest true "Person details"
// @Success 201 {object} dto.LedgerActionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create person"
// @Security BearerAuth
// @Router /people [post]
func (h *personHandler) createPerson(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.ledgerService.CreatePerson(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create person")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerActionResponse(result))
}

// listPeople godoc
// @Summary List people
// @Description Lists the user's people with accrued interest, formatted balance and row colour
// @Tags people
// @Produce  json
// @Param   type query string false "debt or loan"
// @Param   search query string false "Case-insensitive name search"
// @Param   sort query string false "amount (default) or name"
// @Success 200 {array} dto.PersonResponse
// @Failure 400 {object} ErrorResponse "Invalid query"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list people"
// @Security BearerAuth
// @Router /people [get]
func (h *personHandler) listPeople(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListPeopleParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}

	views, err := h.ledgerService.ListPeople(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list people")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPersonResponse(views))
}

// summary godoc
// @Summary Per-currency totals
// @Description Totals of debts and loans and the net position for each currency. Currencies are never combined.
// @Tags people
// @Produce  json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /people/summary [get]
func (h *personHandler) summary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	totals, err := h.ledgerService.Summary(ctx, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute summary")
		return
	}
	registry, err := h.currencyService.Registry(ctx, userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(totals, func(amount decimal.Decimal, code string) string {
		formatted := registry.FormatAmount(amount, code)
		if amount.IsNegative() {
			return "-" + formatted
		}
		return formatted
	}))
}

// getPerson godoc
// @Summary Get a person
// @Description Returns a person with accrued interest and its transactions, newest first
// @Tags people
// @Produce  json
// @Param   personID path string true "Person ID"
// @Success 200 {object} dto.PersonDetailResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 500 {object} ErrorResponse "Failed to get person"
// @Security BearerAuth
// @Router /people/{personID} [get]
func (h *personHandler) getPerson(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	detail, err := h.ledgerService.GetPerson(c.Request.Context(), userID, c.Param("personID"))
	if err != nil {
		respondWithError(c, err, "Failed to get person")
		return
	}
	c.JSON(http.StatusOK, dto.ToPersonDetailResponse(detail))
}

// collect godoc
// @Summary Collect from a person
// @Description Reduces the balance. Over-collection flips debt and loan; collecting exactly the balance archives the person.
// @Tags people
// @Accept  json
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   body body dto.LedgerAmountRequest true "Amount and note"
// @Success 200 {object} dto.LedgerActionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Security BearerAuth
// @Router /people/{personID}/collect [post]
func (h *personHandler) collect(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.LedgerAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.ledgerService.Collect(c.Request.Context(), userID, c.Param("personID"), req)
	h.respondAction(c, result, err, "Failed to collect")
}

// collectAll godoc
// @Summary Collect the whole balance
// @Description Collects the outstanding balance and archives the person. The body is optional.
// @Tags people
// @Accept  json
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   body body dto.CollectFullRequest false "Note and expected version"
// @Success 200 {object} dto.LedgerActionResponse
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Security BearerAuth
// @Router /people/{personID}/collect-all [post]
func (h *personHandler) collectAll(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CollectFullRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	result, err := h.ledgerService.CollectFull(c.Request.Context(), userID, c.Param("personID"), req)
	h.respondAction(c, result, err, "Failed to collect")
}

// addAmount godoc
// @Summary Add to a balance
// @Description Increases the outstanding balance; the debt or loan type never changes
// @Tags people
// @Accept  json
// @Produce  json
// @Param   personID path string true "Person ID"
// @Param   body body dto.LedgerAmountRequest true "Amount and note"
// @Success 200 {object} dto.LedgerActionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Person not found"
// @Failure 409 {object} ErrorResponse "Stale version"
// @Security BearerAuth
// @Router /people/{personID}/add [post]
func (h *personHandler) addAmount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.LedgerAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.ledgerService.AddAmount(c.Request.Context(), userID, c.Param("personID"), req)
	h.respondAction(c, result, err, "Failed to add amount")
}

func (h *personHandler) respondAction(c *gin.Context, result *domain.LedgerActionResult, err error, fallback string) {
	if err != nil {
		respondWithError(c, err, fallback)
		return
	}
	if result.CompletedRecord != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("Person archived",
			slog.String("record_id", result.CompletedRecord.RecordID))
		middleware.PosthogEvent(c, h.posthogClient, "person_completed", map[string]any{
			"currency": result.CompletedRecord.CurrencyCode,
		})
	}
	c.JSON(http.StatusOK, dto.ToLedgerActionResponse(result))
}
