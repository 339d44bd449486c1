package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/padyhealth/portal/internal/config"
	"github.com/padyhealth/portal/internal/domain/appointment"
	"github.com/padyhealth/portal/internal/domain/doctor"
	"github.com/padyhealth/portal/internal/domain/hospital"
	"github.com/padyhealth/portal/internal/domain/patient"
	"github.com/padyhealth/portal/internal/platform/db"
	"github.com/padyhealth/portal/internal/platform/notification"
)

const seedCreatedBy = "seed"

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo doctors, hospitals, patients and appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.MongoDB)
	notifier := notification.NewService(nil)

	hospitalSvc := hospital.NewService(hospital.NewMongoRepository(database), notifier, logger)
	doctorSvc := doctor.NewService(doctor.NewMongoRepository(database), notifier, logger)
	patientSvc := patient.NewService(patient.NewMongoRepository(database), notifier, logger)
	appointmentSvc := appointment.NewService(appointment.NewMongoRepository(database), notifier, logger)

	hospitals := []*hospital.Hospital{
		{Name: "PADY General Hospital", Address: "12 Harbor Road", Phone: "555-010-0001"},
		{Name: "Riverside Clinic", Address: "88 Mill Lane", Phone: "555-010-0002"},
	}
	for _, h := range hospitals {
		if err := hospitalSvc.AddHospital(ctx, h, seedCreatedBy); err != nil {
			return err
		}
	}

	doctors := []*doctor.Doctor{
		{Name: "Dr. Amara Osei", Specialty: "cardiology", HospitalID: hospitals[0].ID.Hex()},
		{Name: "Dr. Lena Fischer", Specialty: "pediatrics", HospitalID: hospitals[0].ID.Hex()},
		{Name: "Dr. Ravi Menon", Specialty: "orthopedics", HospitalID: hospitals[1].ID.Hex()},
	}
	for _, d := range doctors {
		if err := doctorSvc.AddDoctor(ctx, d, seedCreatedBy); err != nil {
			return err
		}
	}

	patients := []*patient.Patient{
		{Name: "Grace Obi", Email: "grace@example.com", Phone: "555-020-1001", Gender: "female"},
		{Name: "Tomás Rivera", Email: "tomas@example.com", Phone: "555-020-1002", Gender: "male"},
		{Name: "Mei Chen", Email: "mei@example.com", Phone: "555-020-1003", Gender: "female"},
	}
	for _, p := range patients {
		if err := patientSvc.CreatePatient(ctx, p, seedCreatedBy); err != nil {
			return err
		}
	}

	appts := []*appointment.Appointment{
		{PatientID: patients[0].ID.Hex(), DoctorID: doctors[0].ID.Hex(), Date: time.Now().Add(2 * time.Hour), Reason: "checkup"},
		{PatientID: patients[1].ID.Hex(), DoctorID: doctors[1].ID.Hex(), Date: time.Now().AddDate(0, 0, 3), Reason: "follow-up"},
	}
	for _, a := range appts {
		if err := appointmentSvc.BookAppointment(ctx, a, seedCreatedBy); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d hospitals, %d doctors, %d patients, %d appointments.\n",
		len(hospitals), len(doctors), len(patients), len(appts))
	return nil
}
