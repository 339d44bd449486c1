package clinical

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRepo struct {
	testResults   []*TestResult
	operations    []*Operation
	consultations []*Consultation
	failing       bool
}

var errBackend = errors.New("backend unavailable")

func (m *mockRepo) CreateTestResult(ctx context.Context, tr *TestResult) error {
	if m.failing {
		return errBackend
	}
	tr.ID = primitive.NewObjectID()
	m.testResults = append(m.testResults, tr)
	return nil
}

func (m *mockRepo) ListPatientTestResults(ctx context.Context, patientID string) ([]*TestResult, error) {
	if m.failing {
		return nil, errBackend
	}
	var out []*TestResult
	for _, tr := range m.testResults {
		if tr.PatientID == patientID {
			out = append(out, tr)
		}
	}
	return out, nil
}

func (m *mockRepo) CreateOperation(ctx context.Context, o *Operation) error {
	if m.failing {
		return errBackend
	}
	o.ID = primitive.NewObjectID()
	m.operations = append(m.operations, o)
	return nil
}

func (m *mockRepo) ListOperations(ctx context.Context) ([]*Operation, error) {
	if m.failing {
		return nil, errBackend
	}
	return m.operations, nil
}

func (m *mockRepo) CreateConsultation(ctx context.Context, c *Consultation) error {
	if m.failing {
		return errBackend
	}
	c.ID = primitive.NewObjectID()
	m.consultations = append(m.consultations, c)
	return nil
}

func (m *mockRepo) ListPatientConsultations(ctx context.Context, patientID string) ([]*Consultation, error) {
	if m.failing {
		return nil, errBackend
	}
	var out []*Consultation
	for _, c := range m.consultations {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockNotifier struct {
	successes []string
	errs      []string
}

func (m *mockNotifier) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *mockNotifier) Error(msg string)   { m.errs = append(m.errs, msg) }
func (m *mockNotifier) Warning(msg string) {}
func (m *mockNotifier) Info(msg string)    {}

func TestAddTestResultStampsMetadata(t *testing.T) {
	repo := &mockRepo{}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	tr := &TestResult{PatientID: "p1", TestName: "CBC", Result: "normal"}
	if err := svc.AddTestResult(context.Background(), tr, "doc-1"); err != nil {
		t.Fatalf("AddTestResult() error = %v", err)
	}
	if tr.CreatedAt.IsZero() || tr.CreatedBy != "doc-1" {
		t.Errorf("metadata not stamped: %+v", tr.Meta)
	}
	if notifier.successes[0] != "Test result added!" {
		t.Errorf("unexpected notice %q", notifier.successes[0])
	}
}

func TestScheduleOperationDefaultsScheduled(t *testing.T) {
	repo := &mockRepo{}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	o := &Operation{PatientID: "p1", OperationType: "appendectomy", ScheduledDate: time.Now().Add(48 * time.Hour)}
	if err := svc.ScheduleOperation(context.Background(), o, ""); err != nil {
		t.Fatalf("ScheduleOperation() error = %v", err)
	}
	if o.Status != OpStatusScheduled {
		t.Errorf("status = %q, want %q", o.Status, OpStatusScheduled)
	}
	if notifier.successes[0] != "Operation scheduled!" {
		t.Errorf("unexpected notice %q", notifier.successes[0])
	}
}

func TestRecordConsultationFailurePropagates(t *testing.T) {
	repo := &mockRepo{failing: true}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	err := svc.RecordConsultation(context.Background(), &Consultation{PatientID: "p1"}, "")
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected propagated error, got %v", err)
	}
	if len(notifier.errs) != 1 || notifier.errs[0] != "Failed to record consultation" {
		t.Errorf("unexpected error notices %v", notifier.errs)
	}
}

func TestListsDegradeToEmpty(t *testing.T) {
	repo := &mockRepo{failing: true}
	svc := NewService(repo, &mockNotifier{}, zerolog.Nop())

	if got := svc.ListPatientTestResults(context.Background(), "p1"); len(got) != 0 {
		t.Errorf("test results: expected empty slice, got %d", len(got))
	}
	if got := svc.ListOperations(context.Background()); len(got) != 0 {
		t.Errorf("operations: expected empty slice, got %d", len(got))
	}
	if got := svc.ListPatientConsultations(context.Background(), "p1"); len(got) != 0 {
		t.Errorf("consultations: expected empty slice, got %d", len(got))
	}
}

func TestListPatientConsultationsFiltersByPatient(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockNotifier{}, zerolog.Nop())

	for _, pid := range []string{"p1", "p2", "p1"} {
		if err := svc.RecordConsultation(context.Background(), &Consultation{PatientID: pid}, ""); err != nil {
			t.Fatalf("RecordConsultation() error = %v", err)
		}
	}
	if got := svc.ListPatientConsultations(context.Background(), "p1"); len(got) != 2 {
		t.Errorf("expected 2 consultations for p1, got %d", len(got))
	}
}
