package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/alert"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

type AlertHandler struct {
	alerts *application.AlertService
	forms  *application.FormService
}

func NewAlertHandler(alerts *application.AlertService, forms *application.FormService) *AlertHandler {
	return &AlertHandler{alerts: alerts, forms: forms}
}

// GetAllAlerts godoc
// @Summary Every alert, newest first
// @Tags alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} alert.Alert
// @Router /alerts/all [get]
func (h *AlertHandler) GetAllAlerts(c *gin.Context) {
	alerts, err := h.alerts.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// GetUserAlerts godoc
// @Summary Alerts addressed to the caller
// @Tags alerts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} alert.Alert
// @Router /alerts/user [get]
func (h *AlertHandler) GetUserAlerts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	alerts, err := h.alerts.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// UpdateAlertStatus godoc
// @Summary Set the status of the form an alert refers to
// @Tags alerts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param input body alert.UpdateStatusInput true "New status"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Alert or form not found"
// @Router /alerts/user/{id}/status [patch]
func (h *AlertHandler) UpdateAlertStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input alert.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.forms.ApplyAlertStatus(c.Request.Context(), userID, id, input.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: application.MsgStatusUpdated})
}

// MarkAlertRead godoc
// @Summary Mark one of the caller's alerts read
// @Tags alerts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} response.MessageResponse
// @Router /alerts/user/{id}/read [patch]
func (h *AlertHandler) MarkAlertRead(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.alerts.MarkRead(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Alert marked as read"})
}
