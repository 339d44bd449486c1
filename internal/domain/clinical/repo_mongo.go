package clinical

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/padyhealth/portal/internal/platform/db"
)

type mongoRepository struct {
	testResults   *mongo.Collection
	operations    *mongo.Collection
	consultations *mongo.Collection
}

func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepository{
		testResults:   database.Collection(db.CollTestResults),
		operations:    database.Collection(db.CollOperations),
		consultations: database.Collection(db.CollConsultations),
	}
}

var byCreatedDesc = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *mongoRepository) CreateTestResult(ctx context.Context, tr *TestResult) error {
	res, err := r.testResults.InsertOne(ctx, tr)
	if err != nil {
		return fmt.Errorf("insert test result: %w", err)
	}
	tr.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) ListPatientTestResults(ctx context.Context, patientID string) ([]*TestResult, error) {
	cursor, err := r.testResults.Find(ctx, bson.M{"patientId": patientID}, byCreatedDesc)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*TestResult
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	return out, nil
}

func (r *mongoRepository) CreateOperation(ctx context.Context, o *Operation) error {
	res, err := r.operations.InsertOne(ctx, o)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) ListOperations(ctx context.Context) ([]*Operation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: -1}})
	cursor, err := r.operations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Operation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return out, nil
}

func (r *mongoRepository) CreateConsultation(ctx context.Context, c *Consultation) error {
	res, err := r.consultations.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert consultation: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoRepository) ListPatientConsultations(ctx context.Context, patientID string) ([]*Consultation, error) {
	cursor, err := r.consultations.Find(ctx, bson.M{"patientId": patientID}, byCreatedDesc)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*Consultation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return out, nil
}
