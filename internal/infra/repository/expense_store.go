package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/domvailm/barber-ledger/internal/domain/expense"
	"github.com/domvailm/barber-ledger/internal/httperr"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/models"
)

const expensesKey = "expenses"

// ExpenseKVStore segue a mesma disciplina do store de agendamentos:
// escritor único, coleção inteira por gravação.
type ExpenseKVStore struct {
	kv kv.Store
	mu sync.Mutex
}

func NewExpenseKVStore(store kv.Store) *ExpenseKVStore {
	return &ExpenseKVStore{kv: store}
}

func (s *ExpenseKVStore) load(ctx context.Context) []models.Expense {
	raw, err := s.kv.Get(ctx, expensesKey)
	if err == kv.ErrNotFound {
		return nil
	}
	if err != nil {
		log.Printf("expenses: unreadable collection, starting empty: %v", err)
		return nil
	}

	var expenses []models.Expense
	if err := json.Unmarshal(raw, &expenses); err != nil {
		log.Printf("expenses: corrupt collection, starting empty: %v", err)
		return nil
	}
	return expenses
}

func (s *ExpenseKVStore) save(ctx context.Context, expenses []models.Expense) error {
	raw, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	if err := s.kv.Put(ctx, expensesKey, raw); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}

func (s *ExpenseKVStore) Create(ctx context.Context, ex *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ex.ID = uuid.NewString()
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = time.Now()
	}
	if ex.Category == "" {
		ex.Category = models.ExpenseCategoryManual
	}

	return s.save(ctx, append(s.load(ctx), *ex))
}

func (s *ExpenseKVStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := s.load(ctx)

	for i := range expenses {
		if expenses[i].ID == id {
			return s.save(ctx, append(expenses[:i], expenses[i+1:]...))
		}
	}

	return httperr.ErrBusiness(httperr.CodeExpenseNotFound)
}

func (s *ExpenseKVStore) FindAll(ctx context.Context) ([]models.Expense, error) {
	expenses := s.load(ctx)

	// Mais recentes primeiro, como o painel exibe.
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	return expenses, nil
}

// Compile-time check
var _ domain.Repository = (*ExpenseKVStore)(nil)
