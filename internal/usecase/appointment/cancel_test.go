package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domvailm/barber-ledger/internal/audit"
	domain "github.com/domvailm/barber-ledger/internal/domain/appointment"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/kv"
)

func TestCancelForCustomer_PhoneMustMatch(t *testing.T) {
	createUC, repo := newCreateUC(t)
	cancelUC := NewCancelAppointment(
		repo,
		testTZ,
		audit.NewDispatcher(audit.New(kv.NewMemoryStore())),
	)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validInput(t))
	require.NoError(t, err)

	// Telefone errado responde not found e não muda o agendamento.
	_, err = cancelUC.ExecuteForCustomer(ctx, ap.ID, "+5511000000000")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	stored, err := repo.GetByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), stored.Status)

	// Com o telefone da reserva, cancela.
	cancelled, err := cancelUC.ExecuteForCustomer(ctx, ap.ID, ap.CustomerPhone)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestCancel_Operator(t *testing.T) {
	createUC, repo := newCreateUC(t)
	cancelUC := NewCancelAppointment(
		repo,
		testTZ,
		audit.NewDispatcher(audit.New(kv.NewMemoryStore())),
	)
	ctx := context.Background()

	ap, err := createUC.Execute(ctx, validInput(t))
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(ctx, ap.ID)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	// Cancelar de novo é transição inválida.
	_, err = cancelUC.Execute(ctx, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}
