package hospital

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Hospital struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status  string             `bson:"status" json:"status"`

	db.Meta `bson:",inline"`
}
