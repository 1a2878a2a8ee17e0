package patient

import "context"

// Repository is the read contract over patient records. The demo backend is
// an in-memory seed; a real storage backend substitutes here without
// touching consumers.
type Repository interface {
	// GetByID retrieves a patient by health-card id (exact match on the
	// stored, upper-cased key). Returns ErrPatientNotFound if absent.
	GetByID(ctx context.Context, healthCardID string) (*Patient, error)

	// Search returns records matching the query in stable seed order.
	// An empty query returns every record.
	Search(ctx context.Context, query string) ([]*Patient, error)
}
