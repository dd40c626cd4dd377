package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/domvailm/barber-ledger/internal/catalog"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/httpresp"
	"github.com/domvailm/barber-ledger/internal/models"
	ucappointment "github.com/domvailm/barber-ledger/internal/usecase/appointment"
)

// PublicHandler é o fluxo de reserva do cliente: catálogo, mural de
// promoções, dias, horários, criação e desmarque da própria reserva.
type PublicHandler struct {
	services     *catalog.Catalog
	promotions   []models.Promotion
	days         *ucappointment.ListBookableDays
	availability *ucappointment.GetAvailability
	create       *ucappointment.CreateAppointment
	list         *ucappointment.ListAppointments
	cancel       *ucappointment.CancelAppointment
}

func NewPublicHandler(
	services *catalog.Catalog,
	promotions []models.Promotion,
	days *ucappointment.ListBookableDays,
	availability *ucappointment.GetAvailability,
	create *ucappointment.CreateAppointment,
	list *ucappointment.ListAppointments,
	cancel *ucappointment.CancelAppointment,
) *PublicHandler {
	return &PublicHandler{
		services:     services,
		promotions:   promotions,
		days:         days,
		availability: availability,
		create:       create,
		list:         list,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerName      string `json:"customer_name" binding:"required"`
	CustomerPhone     string `json:"customer_phone" binding:"required"`
	ServiceID         string `json:"service_id" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	ClientPreferences string `json:"client_preferences"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.services.All())
}

func (h *PublicHandler) ListPromotions(c *gin.Context) {
	httpresp.List(c, h.promotions)
}

func (h *PublicHandler) ListDays(c *gin.Context) {
	httpresp.List(c, h.days.Execute())
}

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		ServiceID:         req.ServiceID,
		Date:              req.Date,
		Time:              req.Time,
		ClientPreferences: req.ClientPreferences,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *PublicHandler) ListByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	appointments, err := h.list.ByPhone(c.Request.Context(), phone)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

func (h *PublicHandler) Cancel(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		httperr.BadRequest(c, "missing_phone", "Telefone obrigatório.")
		return
	}

	ap, err := h.cancel.ExecuteForCustomer(c.Request.Context(), c.Param("id"), phone)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
