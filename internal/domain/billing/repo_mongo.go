package billing

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/padyhealth/portal/internal/platform/db"
)

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{coll: database.Collection(db.CollBills)}
}

func (r *mongoRepository) Create(ctx context.Context, b *Bill) error {
	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var b Bill
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find bill: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) ListByPatient(ctx context.Context, patientID string) ([]*Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Bill
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return out, nil
}

func (r *mongoRepository) UpdateStatus(ctx context.Context, id, status string, payment Payment) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	patch := bson.M{
		"status":    status,
		"updatedAt": db.Now(),
	}
	if payment.Method != "" {
		patch["paymentMethod"] = payment.Method
	}
	if payment.TransactionID != "" {
		patch["transactionId"] = payment.TransactionID
	}
	if payment.PaidAt != nil {
		patch["paidAt"] = *payment.PaidAt
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
