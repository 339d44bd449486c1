package billing

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
		log:      log.With().Str("component", "billing").Logger(),
	}
}

// GenerateBill stores a new bill with pending status.
func (s *Service) GenerateBill(ctx context.Context, b *Bill, createdBy string) error {
	b.Status = StatusPending
	b.StampCreate(createdBy)
	if err := s.repo.Create(ctx, b); err != nil {
		s.notifier.Error("Failed to generate bill")
		return err
	}
	s.notifier.Success("Bill generated successfully!")
	return nil
}

// ListPatientBills returns one patient's bills, newest first. Empty on
// failure.
func (s *Service) ListPatientBills(ctx context.Context, patientID string) []*Bill {
	out, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		s.log.Error().Err(err).Str("patientId", patientID).Msg("list bills")
		return []*Bill{}
	}
	return out
}

func (s *Service) GetBill(ctx context.Context, id string) *Bill {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.log.Error().Err(err).Str("id", id).Msg("get bill")
		}
		return nil
	}
	return b
}

// ProcessPayment transitions a bill to the given status, merging any
// payment fields supplied.
func (s *Service) ProcessPayment(ctx context.Context, id, status string, payment Payment) error {
	if err := s.repo.UpdateStatus(ctx, id, status, payment); err != nil {
		s.notifier.Error("Failed to process payment")
		return err
	}
	s.notifier.Success("Payment processed successfully!")
	return nil
}
