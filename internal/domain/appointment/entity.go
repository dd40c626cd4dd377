package appointment

import (
	"time"

	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete fecha o atendimento registrando como ele foi pago.
// Só sai de SCHEDULED e exige um método de quitação real.
func Complete(ap *models.Appointment, method PaymentMethod, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if !IsSettlement(method) {
		return httperr.ErrBusiness(httperr.CodeInvalidPaymentMethod)
	}

	ap.Status = string(StatusCompleted)
	ap.PaymentMethod = string(method)
	ap.CompletedAt = &now
	return nil
}

// Cancel libera o horário. O método de pagamento fica como está
// (PENDING), retido só para histórico.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// SetBarberNotes é metadado, não transição: vale em qualquer estado.
func SetBarberNotes(ap *models.Appointment, notes string) {
	ap.BarberNotes = notes
}
