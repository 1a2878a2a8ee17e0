package consult

import "context"

// Store holds consultation requests. The demo backend is in-memory and
// seeded with the pending requests from the directory dataset.
type Store interface {
	// GetConsult returns ErrRequestNotFound if absent.
	GetConsult(ctx context.Context, id string) (*Request, error)

	// ListForSpecialist returns the specialist's requests in seed order,
	// newest additions last.
	ListForSpecialist(ctx context.Context, specialistID string) ([]*Request, error)

	// CreateConsult adds a new pending request.
	CreateConsult(ctx context.Context, r *Request) error

	// UpdateConsult persists a status transition.
	UpdateConsult(ctx context.Context, r *Request) error
}
