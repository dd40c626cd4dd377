package appointment

import "github.com/domvailm/barber-ledger/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// IsActive diz se o agendamento ainda ocupa o horário dele.
// Cancelado libera o slot; os demais estados o mantêm ocupado.
func IsActive(s Status) bool {
	return s != StatusCancelled
}

func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentPending PaymentMethod = "PENDING"
	PaymentCash    PaymentMethod = "CASH"
	PaymentPix     PaymentMethod = "PIX"
	PaymentCard    PaymentMethod = "CARD"
)

func InitialPayment() PaymentMethod {
	return PaymentPending
}

// IsSettlement diz se o método pode quitar um atendimento concluído.
// PENDING nunca quita.
func IsSettlement(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}
