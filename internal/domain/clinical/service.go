package clinical

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
		log:      log.With().Str("component", "clinical").Logger(),
	}
}

func (s *Service) AddTestResult(ctx context.Context, tr *TestResult, createdBy string) error {
	tr.StampCreate(createdBy)
	if err := s.repo.CreateTestResult(ctx, tr); err != nil {
		s.notifier.Error("Failed to add test result")
		return err
	}
	s.notifier.Success("Test result added!")
	return nil
}

func (s *Service) ListPatientTestResults(ctx context.Context, patientID string) []*TestResult {
	out, err := s.repo.ListPatientTestResults(ctx, patientID)
	if err != nil {
		s.log.Error().Err(err).Str("patientId", patientID).Msg("list test results")
		return []*TestResult{}
	}
	return out
}

// ScheduleOperation stores a new operation with scheduled status.
func (s *Service) ScheduleOperation(ctx context.Context, o *Operation, createdBy string) error {
	o.Status = OpStatusScheduled
	o.StampCreate(createdBy)
	if err := s.repo.CreateOperation(ctx, o); err != nil {
		s.notifier.Error("Failed to schedule operation")
		return err
	}
	s.notifier.Success("Operation scheduled!")
	return nil
}

func (s *Service) ListOperations(ctx context.Context) []*Operation {
	out, err := s.repo.ListOperations(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list operations")
		return []*Operation{}
	}
	return out
}

func (s *Service) RecordConsultation(ctx context.Context, c *Consultation, createdBy string) error {
	c.StampCreate(createdBy)
	if err := s.repo.CreateConsultation(ctx, c); err != nil {
		s.notifier.Error("Failed to record consultation")
		return err
	}
	s.notifier.Success("Consultation recorded!")
	return nil
}

func (s *Service) ListPatientConsultations(ctx context.Context, patientID string) []*Consultation {
	out, err := s.repo.ListPatientConsultations(ctx, patientID)
	if err != nil {
		s.log.Error().Err(err).Str("patientId", patientID).Msg("list consultations")
		return []*Consultation{}
	}
	return out
}
