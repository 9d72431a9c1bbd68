package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Patient, error)
	// List returns every patient record.
	List(ctx context.Context) ([]Patient, error)
	// ListByClinician returns the records assigned to one clinician.
	ListByClinician(ctx context.Context, clinicianID int) ([]Patient, error)
	// Create stores a new record; the database assigns ID and CreatedAt,
	// which are written back into p.
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
}
