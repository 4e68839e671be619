package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/form"
	"github.com/linskybing/storeops-go/pkg/response"
	"github.com/linskybing/storeops-go/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// SubmitForm godoc
// @Summary Submit a form
// @Description Routes the form to a user, a role pool or the general pool and alerts the recipients.
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body form.SubmitFormInput true "Form submission"
// @Success 201 {object} form.Form
// @Failure 400 {object} response.ErrorResponse "Invalid form type or recipient"
// @Failure 404 {object} response.ErrorResponse "Recipient not found"
// @Router /forms/submit [post]
func (h *FormHandler) SubmitForm(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input form.SubmitFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	f, err := h.service.Submit(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// GetMyForms godoc
// @Summary Forms submitted by the caller
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param form_type query string false "Filter by form type"
// @Success 200 {array} form.Summary
// @Router /forms/user [get]
func (h *FormHandler) GetMyForms(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	forms, err := h.service.ListUserForms(userID, c.Query("form_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

// GetForm godoc
// @Summary Form detail with history
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param id path int true "Form ID"
// @Success 200 {object} form.Detail
// @Failure 404 {object} response.ErrorResponse "Not found or not visible"
// @Router /forms/{id}/status [get]
func (h *FormHandler) GetForm(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	detail, err := h.service.GetForm(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateFormStatus godoc
// @Summary Set the status of a form routed to the caller
// @Tags forms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Form ID"
// @Param input body form.UpdateStatusInput true "New status and optional signature"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Not found or not the recipient"
// @Router /forms/{id}/status [patch]
func (h *FormHandler) UpdateFormStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var input form.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	if err := h.service.UpdateStatus(c.Request.Context(), userID, id, input); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: application.MsgStatusUpdated})
}

// GetMetadata godoc
// @Summary Reference data for building a form
// @Tags forms
// @Security BearerAuth
// @Produce json
// @Param item_list_type query string true "inventory, equipment or operational-alerts"
// @Success 200 {object} form.Metadata
// @Failure 400 {object} response.ErrorResponse "Missing or invalid item list type"
// @Router /forms/metadata [get]
func (h *FormHandler) GetMetadata(c *gin.Context) {
	meta, err := h.service.Metadata(c.Request.Context(), c.Query("item_list_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}
