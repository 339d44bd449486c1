// Package clinical groups the append-mostly patient-scoped records:
// test results, scheduled operations and consultations.
package clinical

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

// Operation statuses.
const (
	OpStatusScheduled = "scheduled"
	OpStatusCompleted = "completed"
	OpStatusCancelled = "cancelled"
)

type TestResult struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID string             `bson:"patientId" json:"patient_id"`
	TestName  string             `bson:"testName" json:"test_name"`
	Result    string             `bson:"result,omitempty" json:"result,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`

	db.Meta `bson:",inline"`
}

type Operation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID     string             `bson:"patientId" json:"patient_id"`
	OperationType string             `bson:"operationType" json:"operation_type"`
	ScheduledDate time.Time          `bson:"scheduledDate" json:"scheduled_date"`
	Surgeon       string             `bson:"surgeon,omitempty" json:"surgeon,omitempty"`
	Status        string             `bson:"status" json:"status"`

	db.Meta `bson:",inline"`
}

type Consultation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID string             `bson:"patientId" json:"patient_id"`
	DoctorID  string             `bson:"doctorId,omitempty" json:"doctor_id,omitempty"`
	Diagnosis string             `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`

	db.Meta `bson:",inline"`
}
