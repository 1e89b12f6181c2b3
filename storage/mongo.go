package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection is the part of *mongo.Collection the store needs.
type MongoCollection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	BulkWrite(ctx context.Context, models []mongo.WriteModel, opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error)
}

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore keeps every key as one document {_id: key, value: ...}.
type MongoStore struct{ coll MongoCollection }

func NewMongoStore(coll MongoCollection) *MongoStore { return &MongoStore{coll: coll} }

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (s *MongoStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": key},
		kvDocument{Key: key, Value: string(value)},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", key, err)
	}
	return nil
}

// SaveBatch sends every entry in one ordered BulkWrite.
func (s *MongoStore) SaveBatch(ctx context.Context, values map[string][]byte) error {
	models := make([]mongo.WriteModel, 0, len(values))
	for k, v := range values {
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": k}).
			SetReplacement(kvDocument{Key: k, Value: string(v)}).
			SetUpsert(true))
	}
	if len(models) == 0 {
		return nil
	}
	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to perform BulkWrite: %w", err)
	}
	return nil
}
