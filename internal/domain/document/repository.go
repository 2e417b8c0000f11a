package document

import "context"

// Repository defines persistence operations for documents.
type Repository interface {
	// Create persists a document and writes back the generated ID.
	Create(ctx context.Context, d *Document) error

	// GetByID retrieves a document with its content, or nil if absent.
	GetByID(ctx context.Context, id uint) (*Document, error)
}
