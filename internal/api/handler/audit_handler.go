package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

// auditPageSize matches the admin panel's fixed log view.
const auditPageSize = 10

// AuditHandler exposes the admin audit-log view.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

type auditLogsResponse struct {
	Logs  []*domain.AuditEntry `json:"logs"`
	Count int                  `json:"count"`
}

// List handles GET /v1/admin/audit: the latest entries, newest first.
//
// @Summary      List recent audit entries
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auditLogsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	logs, err := h.repo.Latest(c.Request().Context(), auditPageSize)
	if err != nil {
		return err
	}
	if logs == nil {
		logs = []*domain.AuditEntry{}
	}
	return c.JSON(http.StatusOK, auditLogsResponse{Logs: logs, Count: len(logs)})
}
