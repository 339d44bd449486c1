package hospital

import (
	"context"

	"github.com/rs/zerolog"

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
		log:      log.With().Str("component", "hospital").Logger(),
	}
}

func (s *Service) AddHospital(ctx context.Context, h *Hospital, createdBy string) error {
	h.Status = StatusActive
	h.StampCreate(createdBy)
	if err := s.repo.Create(ctx, h); err != nil {
		s.notifier.Error("Failed to add hospital")
		return err
	}
	s.notifier.Success("Hospital added successfully!")
	return nil
}

// ListHospitals returns active hospitals only. Empty on failure.
func (s *Service) ListHospitals(ctx context.Context) []*Hospital {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list hospitals")
		return []*Hospital{}
	}
	return out
}

func (s *Service) GetHospital(ctx context.Context, id string) *Hospital {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.log.Error().Err(err).Str("id", id).Msg("get hospital")
		}
		return nil
	}
	return h
}
