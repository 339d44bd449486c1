package doctor

import (
	"context"

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
		log:      log.With().Str("component", "doctor").Logger(),
	}
}

func (s *Service) AddDoctor(ctx context.Context, d *Doctor, createdBy string) error {
	d.Status = StatusActive
	d.StampCreate(createdBy)
	if err := s.repo.Create(ctx, d); err != nil {
		s.notifier.Error("Failed to add doctor")
		return err
	}
	s.notifier.Success("Doctor added successfully!")
	return nil
}

// ListDoctors returns active doctors only. Empty on failure.
func (s *Service) ListDoctors(ctx context.Context) []*Doctor {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list doctors")
		return []*Doctor{}
	}
	return out
}

func (s *Service) GetDoctor(ctx context.Context, id string) *Doctor {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.log.Error().Err(err).Str("id", id).Msg("get doctor")
		}
		return nil
	}
	return d
}

// UpdateDoctor propagates failures without an error notice; the success
// path still notifies.
func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	d.UpdatedAt = db.Now()
	if err := s.repo.Update(ctx, d); err != nil {
		return err
	}
	s.notifier.Success("Doctor updated!")
	return nil
}
