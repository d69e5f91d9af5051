package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func registerExportRoutes(rg *gin.RouterGroup, es portssvc.ExportSvcFacade) {
	h := &exportHandler{exportService: es}
	rg.GET("/export", h.exportCSV)
}

// exportCSV godoc
// @Summary Export the ledger as CSV
// @Description Downloads people, transaction history and completed records as one CSV document
// @Tags export
// @Produce  text/csv
// @Success 200 {file} file "CSV document"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to export"
// @Security BearerAuth
// @Router /export [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	data, fileName, err := h.exportService.ExportCSV(c.Request.Context(), userID, time.Now())
	if err != nil {
		respondWithError(c, err, "Failed to export")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
