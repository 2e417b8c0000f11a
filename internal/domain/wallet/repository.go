package wallet

import "context"

// Repository defines persistence operations for wallets.
type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	Update(ctx context.Context, w *Wallet) error
	GetByID(ctx context.Context, id uint) (*Wallet, error)
	GetByOwnerUUID(ctx context.Context, ownerUUID string) (*Wallet, error)
	ExistsByOwnerUUID(ctx context.Context, ownerUUID string) (bool, error)
}
