package usecases

import "context"

// TransactionManager is the unit-of-work boundary for wallet mutations.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
