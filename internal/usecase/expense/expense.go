package expense

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/domvailm/barber-ledger/internal/audit"
	domain "github.com/domvailm/barber-ledger/internal/domain/expense"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/models"
	"github.com/domvailm/barber-ledger/internal/timezone"
)

type CreateExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        string
	Category    string
}

type CreateExpense struct {
	repo  domain.Repository
	tz    string
	audit *audit.Dispatcher
}

func NewCreateExpense(
	repo domain.Repository,
	tz string,
	auditDisp *audit.Dispatcher,
) *CreateExpense {
	return &CreateExpense{repo: repo, tz: tz, audit: auditDisp}
}

func (uc *CreateExpense) Execute(
	ctx context.Context,
	in CreateExpenseInput,
) (*models.Expense, error) {

	if in.Description == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if !in.Amount.IsPositive() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidAmount)
	}
	if _, err := timezone.ParseDate(uc.tz, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ex := &models.Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Category:    in.Category,
	}

	if err := uc.repo.Create(ctx, ex); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "expense_created",
		Entity:   "expense",
		EntityID: ex.ID,
		Metadata: map[string]any{"amount": ex.Amount.String()},
	})

	return ex, nil
}

type DeleteExpense struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteExpense(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *DeleteExpense {
	return &DeleteExpense{repo: repo, audit: auditDisp}
}

func (uc *DeleteExpense) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "expense_deleted",
		Entity:   "expense",
		EntityID: id,
	})

	return nil
}

type ListExpenses struct {
	repo domain.Repository
}

func NewListExpenses(repo domain.Repository) *ListExpenses {
	return &ListExpenses{repo: repo}
}

func (uc *ListExpenses) Execute(ctx context.Context) ([]models.Expense, error) {
	return uc.repo.FindAll(ctx)
}
