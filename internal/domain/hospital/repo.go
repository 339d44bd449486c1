package hospital

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no hospital matches the given id.
var ErrNotFound = errors.New("hospital not found")

type Repository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id string) (*Hospital, error)
	// ListActive returns only hospitals whose status is active.
	ListActive(ctx context.Context) ([]*Hospital, error)
}
