package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/httpresp"
	ucexpense "github.com/domvailm/barber-ledger/internal/usecase/expense"
)

type ExpenseHandler struct {
	create *ucexpense.CreateExpense
	delete *ucexpense.DeleteExpense
	list   *ucexpense.ListExpenses
}

func NewExpenseHandler(
	create *ucexpense.CreateExpense,
	delete *ucexpense.DeleteExpense,
	list *ucexpense.ListExpenses,
) *ExpenseHandler {
	return &ExpenseHandler{
		create: create,
		delete: delete,
		list:   list,
	}
}

type CreateExpenseRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Category    string          `json:"category"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ex, err := h.create.Execute(c.Request.Context(), ucexpense.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ex)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, expenses)
}
