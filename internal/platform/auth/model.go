package auth

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/padyhealth/portal/internal/platform/db"
)

// Portal roles.
const (
	RolePatient = "patient"
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RoleStaff   = "staff"
)

// User is the profile document backing an authenticated identity, stored
// in the users collection. The password hash never leaves the server.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID          string             `bson:"uid" json:"uid"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	DisplayName  string             `bson:"displayName" json:"display_name"`
	Role         string             `bson:"role" json:"role"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth  string             `bson:"dateOfBirth,omitempty" json:"date_of_birth,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Disabled     bool               `bson:"disabled,omitempty" json:"-"`

	db.Meta `bson:",inline"`
}

// Profile carries the optional attributes supplied at registration or
// profile edit. Role defaults to patient when unspecified.
type Profile struct {
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
}
