package doctor

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no doctor matches the given id.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	// ListActive returns only doctors whose status is active.
	ListActive(ctx context.Context) ([]*Doctor, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, d *Doctor) error
}
