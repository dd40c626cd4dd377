package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/httpresp"
	ucappointment "github.com/domvailm/barber-ledger/internal/usecase/appointment"
)

// AppointmentHandler é o lado do operador: agenda do dia, conclusão
// com captura do pagamento, cancelamento e anotações.
type AppointmentHandler struct {
	list     *ucappointment.ListAppointments
	complete *ucappointment.CompleteAppointment
	cancel   *ucappointment.CancelAppointment
	notes    *ucappointment.SetBarberNotes
}

func NewAppointmentHandler(
	list *ucappointment.ListAppointments,
	complete *ucappointment.CompleteAppointment,
	cancel *ucappointment.CancelAppointment,
	notes *ucappointment.SetBarberNotes,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:     list,
		complete: complete,
		cancel:   cancel,
		notes:    notes,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type UpdateNotesRequest struct {
	BarberNotes string `json:"barber_notes"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	appointments, err := h.list.ByDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.list.All(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.complete.Execute(
		c.Request.Context(),
		c.Param("id"),
		domain.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.notes.Execute(c.Request.Context(), c.Param("id"), req.BarberNotes)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
