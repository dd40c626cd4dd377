package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/models"
)

func scheduled() *models.Appointment {
	return &models.Appointment{
		ID:            "ap-1",
		Date:          "2024-05-10",
		Time:          "10:30",
		Status:        string(StatusScheduled),
		PaymentMethod: string(PaymentPending),
	}
}

func TestComplete_SetsPaymentAndTimestamp(t *testing.T) {
	ap := scheduled()
	now := time.Date(2024, 5, 10, 11, 20, 0, 0, time.UTC)

	err := Complete(ap, PaymentPix, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, string(PaymentPix), ap.PaymentMethod)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestComplete_RejectsPendingAsSettlement(t *testing.T) {
	ap := scheduled()

	err := Complete(ap, PaymentPending, time.Now())

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidPaymentMethod))
	assert.Equal(t, string(StatusScheduled), ap.Status)
}

func TestComplete_TerminalStatesRejectTransitions(t *testing.T) {
	for _, status := range []Status{StatusCompleted, StatusCancelled} {
		ap := scheduled()
		ap.Status = string(status)

		assert.True(t, httperr.IsBusiness(Complete(ap, PaymentCash, time.Now()), httperr.CodeInvalidState))
		assert.True(t, httperr.IsBusiness(Cancel(ap, time.Now()), httperr.CodeInvalidState))
	}
}

func TestCancel_KeepsPaymentPending(t *testing.T) {
	ap := scheduled()
	now := time.Date(2024, 5, 9, 8, 0, 0, 0, time.UTC)

	err := Cancel(ap, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, string(PaymentPending), ap.PaymentMethod)
	require.NotNil(t, ap.CancelledAt)
}

func TestSetBarberNotes_AnyState(t *testing.T) {
	ap := scheduled()
	ap.Status = string(StatusCompleted)

	SetBarberNotes(ap, "prefere máquina 2")

	assert.Equal(t, "prefere máquina 2", ap.BarberNotes)
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusScheduled))
	assert.True(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))
}

func TestIsSettlement(t *testing.T) {
	assert.True(t, IsSettlement(PaymentCash))
	assert.True(t, IsSettlement(PaymentPix))
	assert.True(t, IsSettlement(PaymentCard))
	assert.False(t, IsSettlement(PaymentPending))
	assert.False(t, IsSettlement(PaymentMethod("CHEQUE")))
}
