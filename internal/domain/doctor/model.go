package doctor

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Doctor struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Specialty  string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	HospitalID string             `bson:"hospitalId,omitempty" json:"hospital_id,omitempty"`
	Status     string             `bson:"status" json:"status"`

	db.Meta `bson:",inline"`
}
