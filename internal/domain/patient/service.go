package patient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/padyhealth/portal/internal/platform/db"
	"github.com/padyhealth/portal/internal/platform/notification"
)

// Service applies the portal's write/read policy: writes notify the user
// and propagate failures; reads degrade to empty results with a log line.
type Service struct {
	repo     Repository
	notifier notification.Notifier
	log      zerolog.Logger
}

func NewService(repo Repository, notifier notification.Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log.With().Str("component", "patient").Logger(),
	}
}

// CreatePatient stores a new patient with active status and stamped
// metadata, returning the record with its assigned id.
func (s *Service) CreatePatient(ctx context.Context, p *Patient, createdBy string) error {
	p.Status = StatusActive
	p.StampCreate(createdBy)
	if err := s.repo.Create(ctx, p); err != nil {
		s.notifier.Error("Failed to add patient")
		return err
	}
	s.notifier.Success("Patient added successfully!")
	return nil
}

// ListPatients returns all patients, newest first. An empty slice on
// failure, never an error.
func (s *Service) ListPatients(ctx context.Context) []*Patient {
	out, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list patients")
		return []*Patient{}
	}
	return out
}

// GetPatient returns nil for a missing id and for read failures.
func (s *Service) GetPatient(ctx context.Context, id string) *Patient {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.log.Error().Err(err).Str("id", id).Msg("get patient")
		}
		return nil
	}
	return p
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	p.UpdatedAt = db.Now()
	if err := s.repo.Update(ctx, p); err != nil {
		s.notifier.Error("Failed to update patient")
		return err
	}
	s.notifier.Success("Patient updated successfully!")
	return nil
}

// DeletePatient removes the record permanently.
func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.notifier.Error("Failed to delete patient")
		return err
	}
	s.notifier.Success("Patient deleted successfully!")
	return nil
}
