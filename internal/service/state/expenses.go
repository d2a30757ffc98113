package state

import (
	"context"

	"github.com/Domenick1991/tripmate/internal/domain"
	"github.com/Domenick1991/tripmate/internal/storage"
)

func (s *Store) AddExpense(ctx context.Context, expense domain.Expense) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.requireUser("add expense")
	if err != nil {
		return "", err
	}
	return s.appendExpense(ctx, user.ID, expense), nil
}

// appendExpense must be called with mu held.
func (s *Store) appendExpense(ctx context.Context, userID string, expense domain.Expense) string {
	expense.ID = s.newID()
	expense.UserID = userID
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	if expense.Currency == "" {
		expense.Currency = DefaultCurrency
	}
	if expense.Category == "" {
		expense.Category = domain.ExpenseOther
	}
	s.expenses = append(s.expenses, expense)
	s.persist(ctx, storage.KeyExpenses, s.expenses)
	return expense.ID
}

func (s *Store) GetExpenses(_ context.Context, userID string) []domain.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := s.resolveUser(userID)
	if owner == "" {
		return []domain.Expense{}
	}
	return filter(s.expenses, func(e domain.Expense) bool { return e.UserID == owner })
}

// DeleteExpense removes one of the current user's expenses. Unknown ids are ignored.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, err := s.requireUser("delete expense")
	if err != nil {
		return err
	}
	idx := indexOf(s.expenses, func(e domain.Expense) bool { return e.ID == id && e.UserID == user.ID })
	if idx < 0 {
		return nil
	}
	s.expenses = append(s.expenses[:idx:idx], s.expenses[idx+1:]...)
	s.persist(ctx, storage.KeyExpenses, s.expenses)
	return nil
}

// GetTotalExpenses sums the current user's expenses in exactly the given currency.
func (s *Store) GetTotalExpenses(_ context.Context, currency string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0
	}
	var total float64
	for _, e := range s.expenses {
		if e.UserID == s.user.ID && e.Currency == currency {
			total += e.Amount
		}
	}
	return total
}
