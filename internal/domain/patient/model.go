package patient

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

// Patient statuses. New patients start active; anything else drops them
// from list views.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth string             `bson:"dateOfBirth,omitempty" json:"date_of_birth,omitempty"`
	Gender      string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	BloodGroup  string             `bson:"bloodGroup,omitempty" json:"blood_group,omitempty"`
	Status      string             `bson:"status" json:"status"`

	db.Meta `bson:",inline"`
}
