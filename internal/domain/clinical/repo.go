package clinical

import "context"

type Repository interface {
	CreateTestResult(ctx context.Context, r *TestResult) error
	// ListPatientTestResults returns one patient's results, newest first.
	ListPatientTestResults(ctx context.Context, patientID string) ([]*TestResult, error)

	CreateOperation(ctx context.Context, o *Operation) error
	// ListOperations returns all operations ordered by scheduled date,
	// latest first.
	ListOperations(ctx context.Context) ([]*Operation, error)

	CreateConsultation(ctx context.Context, c *Consultation) error
	// ListPatientConsultations returns one patient's consultations,
	// newest first.
	ListPatientConsultations(ctx context.Context, patientID string) ([]*Consultation, error)
}
