package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/httpresp"
	"github.com/domvailm/barber-ledger/internal/timezone"
	ucfinance "github.com/domvailm/barber-ledger/internal/usecase/finance"
)

type FinanceHandler struct {
	summary   *ucfinance.MonthlySummary
	reminders *ucfinance.DueReminders
	tz        string
}

func NewFinanceHandler(
	summary *ucfinance.MonthlySummary,
	reminders *ucfinance.DueReminders,
	tz string,
) *FinanceHandler {
	return &FinanceHandler{
		summary:   summary,
		reminders: reminders,
		tz:        tz,
	}
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	summary, err := h.summary.Execute(c.Request.Context(), year, time.Month(month))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *FinanceHandler) Reminders(c *gin.Context) {
	due, err := h.reminders.Execute(c.Request.Context(), timezone.NowIn(h.tz))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, due)
}
