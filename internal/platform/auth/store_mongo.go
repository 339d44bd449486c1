package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/padyhealth/portal/internal/platform/db"
)

type userStoreMongo struct {
	coll *mongo.Collection
}

// NewUserStoreMongo creates a UserStore over the users collection.
func NewUserStoreMongo(database *mongo.Database) UserStore {
	return &userStoreMongo{coll: database.Collection(db.CollUsers)}
}

func (s *userStoreMongo) Create(ctx context.Context, u *User) error {
	u.StampCreate("")
	res, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *userStoreMongo) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userStoreMongo) FindByUID(ctx context.Context, uid string) (*User, error) {
	var u User
	err := s.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userStoreMongo) UpdateProfile(ctx context.Context, uid string, p Profile) error {
	patch := bson.M{"updatedAt": time.Now().UTC()}
	if p.DisplayName != "" {
		patch["displayName"] = p.DisplayName
	}
	if p.Phone != "" {
		patch["phone"] = p.Phone
	}
	if p.DateOfBirth != "" {
		patch["dateOfBirth"] = p.DateOfBirth
	}
	if p.Gender != "" {
		patch["gender"] = p.Gender
	}
	if p.Address != "" {
		patch["address"] = p.Address
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
