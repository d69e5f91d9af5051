package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/middleware"
	"github.com/SscSPs/loan_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/format", h.formatAmount)
	}
}

// createCurrency godoc
// @Summary Create a custom currency
// @Description Adds a currency for the calling user. A custom currency may override a built-in code.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Currency code already exists"
// @Failure 500 {object} ErrorResponse "Failed to create currency"
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create currency", slog.String("currency_code", req.CurrencyCode))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create currency")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Resolves a code against the built-in and custom currencies. Unknown codes resolve to a pseudo-currency using the code as symbol.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve currency"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	currencyCode := utils.NormalizeCurrencyCode(c.Param("code"))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), userID, currencyCode)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists built-in currencies merged with the user's custom ones, ordered by code
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list currencies"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// formatAmount godoc
// @Summary Format an amount
// @Description Formats an amount with the currency's symbol, grouping and precision
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code"
// @Param   amount query string true "Decimal amount"
// @Success 200 {object} dto.FormatAmountResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /currencies/{code}/format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.FormatAmountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a decimal number"})
		return
	}
	currencyCode := utils.NormalizeCurrencyCode(c.Param("code"))

	formatted, err := h.currencyService.FormatAmount(c.Request.Context(), userID, currencyCode, amount)
	if err != nil {
		respondWithError(c, err, "Failed to format amount")
		return
	}
	c.JSON(http.StatusOK, dto.FormatAmountResponse{
		CurrencyCode: currencyCode,
		Amount:       amount.String(),
		Formatted:    formatted,
	})
}
