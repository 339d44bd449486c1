package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/padyhealth/portal/internal/platform/db"
	"github.com/padyhealth/portal/internal/platform/notification"
)

type Service struct {
	repo     Repository
	notifier notification.Notifier
	log      zerolog.Logger
}

func NewService(repo Repository, notifier notification.Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With().Str("component", "appointment").Logger(),
	}
}

// BookAppointment stores a new appointment, defaulting status to pending
// when the caller supplies none.
func (s *Service) BookAppointment(ctx context.Context, a *Appointment, createdBy string) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	a.StampCreate(createdBy)
	if err := s.repo.Create(ctx, a); err != nil {
		s.notifier.Error("Failed to book appointment")
		return err
	}
	s.notifier.Success("Appointment booked successfully!")
	return nil
}

// ListAppointments returns all appointments, newest date first. Empty on
// failure.
func (s *Service) ListAppointments(ctx context.Context) []*Appointment {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list appointments")
		return []*Appointment{}
	}
	return out
}

// ListPatientAppointments narrows to one patient.
func (s *Service) ListPatientAppointments(ctx context.Context, patientID string) []*Appointment {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		s.log.Error().Err(err).Str("patientId", patientID).Msg("list patient appointments")
		return []*Appointment{}
	}
	return out
}

// ListTodayAppointments returns appointments inside the half-open local
// day [startOfDay, startOfNextDay).
func (s *Service) ListTodayAppointments(ctx context.Context) []*Appointment {
	from, to := TodayRange(time.Now())
	out, err := s.repo.ListRange(ctx, from, to)
	if err != nil {
		s.log.Error().Err(err).Msg("list today appointments")
		return []*Appointment{}
	}
	return out
}

func (s *Service) GetAppointment(ctx context.Context, id string) *Appointment {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.log.Error().Err(err).Str("id", id).Msg("get appointment")
		}
		return nil
	}
	return a
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) error {
	a.UpdatedAt = db.Now()
	if err := s.repo.Update(ctx, a); err != nil {
		s.notifier.Error("Failed to update appointment")
		return err
	}
	s.notifier.Success("Appointment updated!")
	return nil
}

// TodayRange returns the half-open day window containing now, in now's
// own location.
func TodayRange(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}
