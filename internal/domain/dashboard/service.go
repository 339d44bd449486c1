// Package dashboard derives the portal's summary counters from the
// underlying collections.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/padyhealth/portal/internal/domain/appointment"
)

// Stats is the fixed-shape dashboard summary.
type Stats struct {
	TotalPatients       int `json:"totalPatients"`
	TotalAppointments   int `json:"totalAppointments"`
	TotalDoctors        int `json:"totalDoctors"`
	TodayAppointments   int `json:"todayAppointments"`
	PendingAppointments int `json:"pendingAppointments"`
}

type PatientSource interface {
	Count(ctx context.Context) (int64, error)
}

type AppointmentSource interface {
	List(ctx context.Context) ([]*appointment.Appointment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*appointment.Appointment, error)
}

type DoctorSource interface {
	CountActive(ctx context.Context) (int64, error)
}

type Service struct {
	patients     PatientSource
	appointments AppointmentSource
	doctors      DoctorSource
	log          zerolog.Logger
}

func NewService(patients PatientSource, appointments AppointmentSource, doctors DoctorSource, log zerolog.Logger) *Service {
	return &Service{
		patients:     patients,
		appointments: appointments,
		doctors:      doctors,
		log:          log.With().Str("component", "dashboard").Logger(),
	}
}

// ComputeStats runs the four source queries concurrently. Pending
// appointments are counted here from the full list rather than pushed
// down as a query. If any query fails the whole summary is zeroed; no
// partial results.
func (s *Service) ComputeStats(ctx context.Context) Stats {
	var (
		wg sync.WaitGroup

		patientCount int64
		appts        []*appointment.Appointment
		doctorCount  int64
		todayCount   int

		errPatients, errAppts, errDoctors, errToday error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		patientCount, errPatients = s.patients.Count(ctx)
	}()
	go func() {
		defer wg.Done()
		appts, errAppts = s.appointments.List(ctx)
	}()
	go func() {
		defer wg.Done()
		doctorCount, errDoctors = s.doctors.CountActive(ctx)
	}()
	go func() {
		defer wg.Done()
		from, to := appointment.TodayRange(time.Now())
		var today []*appointment.Appointment
		today, errToday = s.appointments.ListRange(ctx, from, to)
		todayCount = len(today)
	}()
	wg.Wait()

	for _, err := range []error{errPatients, errAppts, errDoctors, errToday} {
		if err != nil {
			s.log.Error().Err(err).Msg("dashboard stats")
			return Stats{}
		}
	}

	pending := 0
	for _, a := range appts {
		if a.Status == appointment.StatusPending {
			pending++
		}
	}

	return Stats{
		TotalPatients:       int(patientCount),
		TotalAppointments:   len(appts),
		TotalDoctors:        int(doctorCount),
		TodayAppointments:   todayCount,
		PendingAppointments: pending,
	}
}
