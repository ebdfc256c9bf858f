package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexInfo is an index as reported by listIndexes.
type IndexInfo struct {
	Name   string
	Keys   bson.Raw
	Unique bool
}

type SchemaRepository interface {
	DatabaseName() string
	CreateCollection(ctx context.Context, name string, validator bson.D) error
	// GetValidator returns the live validator of name and whether the
	// collection exists at all.
	GetValidator(ctx context.Context, name string) (bson.Raw, bool, error)
	UpdateValidator(ctx context.Context, name string, validator bson.D) error
	CreateIndexes(ctx context.Context, collection string, indexes []mongo.IndexModel) ([]string, error)
	ListIndexes(ctx context.Context, collection string) ([]IndexInfo, error)
}

type MongoSchemaRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewSchemaRepository(client *mongo.Client, dbName string, timeout time.Duration) SchemaRepository {
	return &MongoSchemaRepository{db: client.Database(dbName), timeout: timeout}
}

func (r *MongoSchemaRepository) DatabaseName() string {
	return r.db.Name()
}

func (r *MongoSchemaRepository) CreateCollection(ctx context.Context, name string, validator bson.D) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.CreateCollection()
	if len(validator) > 0 {
		opts.SetValidator(validator)
	}
	return r.db.CreateCollection(ctx, name, opts)
}

func (r *MongoSchemaRepository) GetValidator(ctx context.Context, name string) (bson.Raw, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	specs, err := r.db.ListCollectionSpecifications(ctx, bson.M{"name": name})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list collection %s: %w", name, err)
	}
	if len(specs) == 0 {
		return nil, false, nil
	}

	validator, ok := specs[0].Options.Lookup("validator").DocumentOK()
	if !ok {
		return nil, true, nil
	}
	return validator, true, nil
}

func (r *MongoSchemaRepository) UpdateValidator(ctx context.Context, name string, validator bson.D) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	return r.db.RunCommand(ctx, cmd).Err()
}

func (r *MongoSchemaRepository) CreateIndexes(ctx context.Context, collection string, indexes []mongo.IndexModel) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.Collection(collection).Indexes().CreateMany(ctx, indexes)
}

func (r *MongoSchemaRepository) ListIndexes(ctx context.Context, collection string) ([]IndexInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	specs, err := r.db.Collection(collection).Indexes().ListSpecifications(ctx)
	if err != nil {
		return nil, err
	}

	indexes := make([]IndexInfo, 0, len(specs))
	for _, spec := range specs {
		info := IndexInfo{Name: spec.Name, Keys: spec.KeysDocument}
		if spec.Unique != nil {
			info.Unique = *spec.Unique
		}
		indexes = append(indexes, info)
	}
	return indexes, nil
}
