package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

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
	return &mongoRepository{coll: database.Collection(db.CollAppointments)}
}

var byDateDesc = options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

func (r *mongoRepository) Create(ctx context.Context, a *Appointment) error {
	res, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var a Appointment
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*Appointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoRepository) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *mongoRepository) ListRange(ctx context.Context, from, to time.Time) ([]*Appointment, error) {
	return r.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lt": to}})
}

func (r *mongoRepository) find(ctx context.Context, filter bson.M) ([]*Appointment, error) {
	cursor, err := r.coll.Find(ctx, filter, byDateDesc)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Appointment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}

func (r *mongoRepository) Update(ctx context.Context, a *Appointment) error {
	patch := bson.M{
		"patientId": a.PatientID,
		"doctorId":  a.DoctorID,
		"date":      a.Date,
		"reason":    a.Reason,
		"status":    a.Status,
		"updatedAt": a.UpdatedAt,
	}
	res, err := r.coll.UpdateByID(ctx, a.ID, bson.M{"$set": patch})
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
