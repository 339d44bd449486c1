package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockRepo struct {
	appointments []*Appointment
	failing      bool
}

var errBackend = errors.New("backend unavailable")

func (m *mockRepo) Create(ctx context.Context, a *Appointment) error {
	if m.failing {
		return errBackend
	}
	a.ID = primitive.NewObjectID()
	m.appointments = append(m.appointments, a)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*Appointment, error) {
	if m.failing {
		return nil, errBackend
	}
	for _, a := range m.appointments {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(ctx context.Context) ([]*Appointment, error) {
	if m.failing {
		return nil, errBackend
	}
	return m.appointments, nil
}

func (m *mockRepo) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	if m.failing {
		return nil, errBackend
	}
	var out []*Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) ListRange(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	if m.failing {
		return nil, errBackend
	}
	var out []*Appointment
	for _, a := range m.appointments {
		if !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, a *Appointment) error {
	if m.failing {
		return errBackend
	}
	for i, existing := range m.appointments {
		if existing.ID == a.ID {
			m.appointments[i] = a
			return nil
		}
	}
	return ErrNotFound
}

type mockNotifier struct {
	successes []string
	errs      []string
}

func (m *mockNotifier) Success(msg string) { m.successes = append(m.successes, msg) }
func (m *mockNotifier) Error(msg string)   { m.errs = append(m.errs, msg) }
func (m *mockNotifier) Warning(msg string) {}
func (m *mockNotifier) Info(msg string)    {}

func TestBookAppointmentDefaultsStatus(t *testing.T) {
	repo := &mockRepo{}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	a := &Appointment{PatientID: "p1", Date: time.Now().Add(24 * time.Hour)}
	if err := svc.BookAppointment(context.Background(), a, "u1"); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if a.Status != StatusPending {
		t.Errorf("status = %q, want %q", a.Status, StatusPending)
	}
	if notifier.successes[0] != "Appointment booked successfully!" {
		t.Errorf("unexpected notice %q", notifier.successes[0])
	}
}

func TestBookAppointmentKeepsExplicitStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockNotifier{}, zerolog.Nop())

	a := &Appointment{PatientID: "p1", Status: StatusConfirmed}
	if err := svc.BookAppointment(context.Background(), a, ""); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	if a.Status != StatusConfirmed {
		t.Errorf("status = %q, want %q", a.Status, StatusConfirmed)
	}
}

func TestBookAppointmentFailurePropagates(t *testing.T) {
	repo := &mockRepo{failing: true}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	err := svc.BookAppointment(context.Background(), &Appointment{PatientID: "p1"}, "")
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected propagated error, got %v", err)
	}
	if len(notifier.errs) != 1 || notifier.errs[0] != "Failed to book appointment" {
		t.Errorf("unexpected error notices %v", notifier.errs)
	}
}

func TestListPatientAppointmentsFiltersAndDegrades(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo, &mockNotifier{}, zerolog.Nop())

	for _, pid := range []string{"p1", "p2", "p1"} {
		if err := svc.BookAppointment(context.Background(), &Appointment{PatientID: pid}, ""); err != nil {
			t.Fatalf("BookAppointment() error = %v", err)
		}
	}

	if got := svc.ListPatientAppointments(context.Background(), "p1"); len(got) != 2 {
		t.Errorf("expected 2 appointments for p1, got %d", len(got))
	}

	repo.failing = true
	if got := svc.ListPatientAppointments(context.Background(), "p1"); len(got) != 0 {
		t.Errorf("expected empty slice on failure, got %d", len(got))
	}
}

func TestTodayRangeIsHalfOpen(t *testing.T) {
	now := time.Date(2026, time.March, 14, 15, 9, 26, 0, time.Local)
	from, to := TodayRange(now)

	if from.Hour() != 0 || from.Day() != 14 {
		t.Errorf("from = %v, want start of day", from)
	}
	if !to.Equal(from.AddDate(0, 0, 1)) {
		t.Errorf("to = %v, want start of next day", to)
	}

	repo := &mockRepo{appointments: []*Appointment{
		{ID: primitive.NewObjectID(), Date: from},                        // inclusive lower bound
		{ID: primitive.NewObjectID(), Date: to.Add(-time.Second)},        // inside
		{ID: primitive.NewObjectID(), Date: to},                          // exclusive upper bound
		{ID: primitive.NewObjectID(), Date: from.Add(-time.Nanosecond)},  // yesterday
	}}
	got, err := repo.ListRange(context.Background(), from, to)
	if err != nil {
		t.Fatalf("ListRange() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 appointments in range, got %d", len(got))
	}
}

func TestUpdateAppointmentRefreshesUpdatedAt(t *testing.T) {
	repo := &mockRepo{}
	notifier := &mockNotifier{}
	svc := NewService(repo, notifier, zerolog.Nop())

	a := &Appointment{PatientID: "p1"}
	if err := svc.BookAppointment(context.Background(), a, ""); err != nil {
		t.Fatalf("BookAppointment() error = %v", err)
	}
	created := a.CreatedAt

	time.Sleep(time.Millisecond)
	a.Status = StatusConfirmed
	if err := svc.UpdateAppointment(context.Background(), a); err != nil {
		t.Fatalf("UpdateAppointment() error = %v", err)
	}
	if !a.CreatedAt.Equal(created) {
		t.Error("createdAt must not change on update")
	}
	if !a.UpdatedAt.After(created) {
		t.Error("updatedAt must advance on update")
	}
	if last := notifier.successes[len(notifier.successes)-1]; last != "Appointment updated!" {
		t.Errorf("unexpected notice %q", last)
	}
}
