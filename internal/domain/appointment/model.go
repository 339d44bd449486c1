package appointment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

// Appointment statuses. New bookings default to pending unless the
// caller supplies one.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID string             `bson:"patientId" json:"patient_id"`
	DoctorID  string             `bson:"doctorId,omitempty" json:"doctor_id,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    string             `bson:"status" json:"status"`

	db.Meta `bson:",inline"`
}
