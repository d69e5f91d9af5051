package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// historyHandler serves the audit log and the archive of completed people.
type historyHandler struct {
	historyService portssvc.HistoryReaderSvc
}

func registerHistoryRoutes(rg *gin.RouterGroup, hs portssvc.HistoryReaderSvc) {
	h := &historyHandler{historyService: hs}

	rg.GET("/transactions", h.listTransactions)
	rg.GET("/completed-records", h.listCompletedRecords)
}

// listTransactions godoc
// @Summary List transaction history
// @Description Returns history newest first, paginated with an opaque token
// @Tags history
// @Produce  json
// @Param   limit query int false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Token from the previous page"
// @Param   personID query string false "Only this person's history"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid query or token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *historyHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}

	txns, nextToken, err := h.historyService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	})
}

// listCompletedRecords godoc
// @Summary List completed records
// @Description Returns archived people, most recently completed first
// @Tags history
// @Produce  json
// @Success 200 {array} dto.CompletedRecordResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list completed records"
// @Security BearerAuth
// @Router /completed-records [get]
func (h *historyHandler) listCompletedRecords(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.historyService.ListCompletedRecords(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list completed records")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompletedRecordResponses(records))
}
