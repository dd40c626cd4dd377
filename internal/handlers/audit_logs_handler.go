package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/domvailm/barber-ledger/internal/audit"
	"github.com/domvailm/barber-ledger/internal/httpresp"
)

type AuditLogsHandler struct {
	logger *audit.Logger
}

func NewAuditLogsHandler(logger *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	entries, err := h.logger.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, entries)
}
