package hospital

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
	return &mongoRepository{coll: database.Collection(db.CollHospitals)}
}

func (r *mongoRepository) Create(ctx context.Context, h *Hospital) error {
	res, err := r.coll.InsertOne(ctx, h)
	if err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	h.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Hospital, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var h Hospital
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find hospital: %w", err)
	}
	return &h, nil
}

func (r *mongoRepository) ListActive(ctx context.Context) ([]*Hospital, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": StatusActive})
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Hospital
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return out, nil
}
