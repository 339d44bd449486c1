package doctor

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/padyhealth/portal/internal/platform/db"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{coll: database.Collection(db.CollDoctors)}
}

func (r *mongoRepository) Create(ctx context.Context, d *Doctor) error {
	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	d.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Doctor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var d Doctor
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &d, nil
}

func (r *mongoRepository) ListActive(ctx context.Context) ([]*Doctor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": StatusActive})
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Doctor
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return out, nil
}

func (r *mongoRepository) CountActive(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"status": StatusActive})
}

func (r *mongoRepository) Update(ctx context.Context, d *Doctor) error {
	patch := bson.M{
		"name":       d.Name,
		"specialty":  d.Specialty,
		"email":      d.Email,
		"phone":      d.Phone,
		"hospitalId": d.HospitalID,
		"status":     d.Status,
		"updatedAt":  d.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, d.ID, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
