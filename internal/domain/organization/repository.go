package organization

import "context"

// Repository defines persistence operations for organizations.
type Repository interface {
	Create(ctx context.Context, o *Organization) error
	Update(ctx context.Context, o *Organization) error
	GetByID(ctx context.Context, id uint) (*Organization, error)
	List(ctx context.Context) ([]*Organization, error)
}
