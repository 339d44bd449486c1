package appointment

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no appointment matches the given id.
var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	// List returns all appointments ordered by date, newest first.
	List(ctx context.Context) ([]*Appointment, error)
	// ListByPatient narrows to one patient, same ordering.
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
	// ListRange returns appointments with date in [from, to).
	ListRange(ctx context.Context, from, to time.Time) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
}
