package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/internal/repository"
	"github.com/linskybing/storeops-go/pkg/utils"
)

// DashboardHandler serves the cross-form views and the move operation.
type DashboardHandler struct {
	service *application.FormService
	audit   repository.AuditRepo
}

func NewDashboardHandler(service *application.FormService, audit repository.AuditRepo) *DashboardHandler {
	return &DashboardHandler{service: service, audit: audit}
}

// MoveForm godoc
// @Summary Hand a form over to another user or pool
// @Tags dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.MoveFormInput true "Move request"
// @Success 200 {object} form.MoveResult
// @Failure 403 {object} response.ErrorResponse "Not allowed to move this form"
// @Failure 404 {object} response.ErrorResponse "Form or recipient not found"
// @Router /dashboard/move-form [post]
func (h *DashboardHandler) MoveForm(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input form.MoveFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	res, err := h.service.Move(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.LogAuditWithConsole(c, "move", "form", strconv.FormatUint(uint64(input.FormID), 10),
		nil, input, "form moved to "+input.NewRecipient, h.audit)
	c.JSON(http.StatusOK, res)
}

// GetMovedForms godoc
// @Summary Forms the caller handed over
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.MovedView
// @Router /dashboard/moved-forms [get]
func (h *DashboardHandler) GetMovedForms(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	moved, err := h.service.ListMovedForms(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, moved)
}

// GetAllForms godoc
// @Summary Every form in the system
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Summary
// @Router /dashboard/forms [get]
func (h *DashboardHandler) GetAllForms(c *gin.Context) {
	forms, err := h.service.ListAllForms()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetUserForms godoc
// @Summary Forms routed to the caller
// @Description Management and Super-Admin see every form; others see forms sent to them or their pools.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {array} form.Summary
// @Router /dashboard/user-forms [get]
func (h *DashboardHandler) GetUserForms(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	forms, err := h.service.ListRelatedForms(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetStats godoc
// @Summary Form counts by status and type
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} form.Stats
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
