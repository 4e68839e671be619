package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/application"
	"github.com/linskybing/storeops-go/internal/domain/audit"
	"github.com/linskybing/storeops-go/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Audit trail of role changes, user deletions and form moves, newest first.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     int      false  "Acting user" example(3)
// @Param        resource_type query     string   false  "Resource type" example("form")
// @Param        action        query     string   false  "Action" example("move")
// @Param        start_time    query     string   false  "RFC3339 lower bound" example("2025-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "RFC3339 upper bound" example("2025-02-01T00:00:00Z")
// @Param        page          query     int      false  "Page (default 1)"
// @Param        limit         query     int      false  "Page size (default 50, max 500)"
// @Success      200 {object}  response.Page[audit.AuditLog]
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var q audit.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	page, err := h.svc.QueryAuditLogs(q)
	reply(c, page, err)
}
