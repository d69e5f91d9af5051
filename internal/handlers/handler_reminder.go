package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/loan_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/loan_ledger/internal/core/ports/services"
	"github.com/SscSPs/loan_ledger/internal/dto"
	"github.com/SscSPs/loan_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reminderHandler handles HTTP requests related to payment reminders.
type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

func registerReminderRoutes(rg *gin.RouterGroup, rs portssvc.ReminderSvcFacade) {
	h := &reminderHandler{reminderService: rs}

	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.createReminder)
		reminders.GET("", h.listReminders)
		reminders.DELETE("/:reminderID", h.deleteReminder)
	}
}

// createReminder godoc
// @Summary Create a reminder
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   reminder body dto.CreateReminderRequest true "Reminder details"
// @Success 201 {object} dto.ReminderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create reminder"
// @Security BearerAuth
// @Router /reminders [post]
func (h *reminderHandler) createReminder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create reminder")
		return
	}
	// A reminder created in the past is overdue straight away.
	view := domain.ReminderView{Reminder: *reminder, Overdue: reminder.IsOverdue(reminder.CreatedAt)}
	c.JSON(http.StatusCreated, dto.ToReminderResponse(&view))
}

// listReminders godoc
// @Summary List reminders
// @Description Returns reminders by date ascending, flagged overdue when the date has passed
// @Tags reminders
// @Produce  json
// @Success 200 {array} dto.ReminderResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list reminders"
// @Security BearerAuth
// @Router /reminders [get]
func (h *reminderHandler) listReminders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	views, err := h.reminderService.ListReminders(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list reminders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReminderResponse(views))
}

// deleteReminder godoc
// @Summary Delete a reminder
// @Tags reminders
// @Param   reminderID path string true "Reminder ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Reminder not found"
// @Failure 500 {object} ErrorResponse "Failed to delete reminder"
// @Security BearerAuth
// @Router /reminders/{reminderID} [delete]
func (h *reminderHandler) deleteReminder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reminderID := c.Param("reminderID")

	if err := h.reminderService.DeleteReminder(c.Request.Context(), userID, reminderID); err != nil {
		respondWithError(c, err, "Failed to delete reminder")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Reminder deleted", slog.String("reminder_id", reminderID))
	c.Status(http.StatusNoContent)
}
