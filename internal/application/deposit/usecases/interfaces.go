package usecases

import "context"

// TransactionManager is the unit-of-work boundary. Every mutating deposit
// operation runs its read-check-write sequence through RunInTransaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// MailSender notifies users about deposit state changes. Sending is best
// effort and happens after the owning transaction commits.
type MailSender interface {
	SendDepositApprovedMail(to, reference string, amount int64) error
}
