package billing

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

// Bill statuses. Transitions happen through an explicit status update,
// never as a side effect of other writes.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusVoid    = "void"
)

type Bill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PatientID   string             `bson:"patientId" json:"patient_id"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`

	PaymentMethod string     `bson:"paymentMethod,omitempty" json:"payment_method,omitempty"`
	TransactionID string     `bson:"transactionId,omitempty" json:"transaction_id,omitempty"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paid_at,omitempty"`

	db.Meta `bson:",inline"`
}

// Payment carries the fields merged into a bill when its status changes.
type Payment struct {
	Method        string     `json:"method"`
	TransactionID string     `json:"transaction_id"`
	PaidAt        *time.Time `json:"paid_at"`
}
