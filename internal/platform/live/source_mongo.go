package live

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoSource backs the manager with collection queries and change
// streams. The watch is unfiltered on purpose: filters are applied at
// snapshot time so removals from the matching set still signal.
type mongoSource struct {
	database *mongo.Database
}

func NewMongoSource(database *mongo.Database) Source {
	return &mongoSource{database: database}
}

func (s *mongoSource) Snapshot(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	cursor, err := s.database.Collection(collection).Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, r := range raw {
		docs = append(docs, toDocument(r))
	}
	return docs, nil
}

func (s *mongoSource) Watch(ctx context.Context, collection string) (<-chan struct{}, error) {
	stream, err := s.database.Collection(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", collection, err)
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			// Coalesce: a pending signal already forces a re-query.
			select {
			case signals <- struct{}{}:
			default:
			}
		}
	}()
	return signals, nil
}

// toDocument rewrites the storage _id into a plain "id" string field.
func toDocument(r bson.M) Document {
	doc := Document{}
	for k, v := range r {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			} else {
				doc["id"] = fmt.Sprint(v)
			}
			continue
		}
		doc[k] = v
	}
	return doc
}
