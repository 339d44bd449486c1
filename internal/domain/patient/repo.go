package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient matches the given id.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	// List returns all patients ordered by creation time, newest first.
	List(ctx context.Context) ([]*Patient, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, p *Patient) error
	// Delete removes the document permanently. Patients are the only
	// entity with a hard delete.
	Delete(ctx context.Context, id string) error
}
