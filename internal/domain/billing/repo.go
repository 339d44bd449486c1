package billing

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no bill matches the given id.
var ErrNotFound = errors.New("bill not found")

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id string) (*Bill, error)
	// ListByPatient returns one patient's bills, newest first.
	ListByPatient(ctx context.Context, patientID string) ([]*Bill, error)
	// UpdateStatus sets the status and merges the payment fields.
	UpdateStatus(ctx context.Context, id, status string, payment Payment) error
}
