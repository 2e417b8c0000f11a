package project

import "context"

// Repository defines persistence operations for projects.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListByOrganizationID(ctx context.Context, organizationID uint) ([]*Project, error)
}
