package transaction

import "context"

// Repository defines persistence operations for transaction info records.
type Repository interface {
	Create(ctx context.Context, i *Info) error
	GetByID(ctx context.Context, id uint) (*Info, error)
}
