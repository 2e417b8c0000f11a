package deposit

import "context"

// Repository defines persistence operations for deposits. Implementations
// must honor the transaction placed in the context by the transaction
// manager so workflow steps stay atomic.
type Repository interface {
	// Create persists a new deposit and writes back the generated ID.
	Create(ctx context.Context, d *Deposit) error

	// Update persists the mutable fields of an existing deposit.
	Update(ctx context.Context, d *Deposit) error

	// GetByID retrieves a deposit by ID, or nil if absent.
	GetByID(ctx context.Context, id uint) (*Deposit, error)

	// GetByIDForUpdate retrieves a deposit by ID taking a row-level write
	// lock. Only meaningful inside a transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Deposit, error)

	// GetByReference retrieves a deposit by its reference code, or nil.
	GetByReference(ctx context.Context, reference string) (*Deposit, error)

	// GetUnapprovedByUserUUID returns the user's outstanding unapproved
	// deposit, or nil if there is none.
	GetUnapprovedByUserUUID(ctx context.Context, userUUID string) (*Deposit, error)

	// ListByUserUUID returns all deposits for a user, newest first.
	ListByUserUUID(ctx context.Context, userUUID string) ([]*Deposit, error)

	// ListWithDocument returns deposits filtered by approval state that
	// carry a supporting document.
	ListWithDocument(ctx context.Context, approved bool) ([]*Deposit, error)

	// DeleteByID removes a deposit. Deleting a missing ID is not an error.
	DeleteByID(ctx context.Context, id uint) error
}
