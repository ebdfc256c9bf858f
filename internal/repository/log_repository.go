package repository

import (
	"context"
	"time"

	"github.com/mehrbod2002/brokerdb/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LogRepository interface {
	SaveLog(ctx context.Context, log *models.BootstrapLog) error
	GetAllLogs(ctx context.Context, page, limit int) ([]*models.BootstrapLog, error)
	GetLogsByRunID(ctx context.Context, runID string) ([]*models.BootstrapLog, error)
}

type MongoLogRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewLogRepository(client *mongo.Client, dbName, collectionName string, timeout time.Duration) LogRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoLogRepository{collection: collection, timeout: timeout}
}

func (r *MongoLogRepository) SaveLog(ctx context.Context, log *models.BootstrapLog) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	log.ID = primitive.NewObjectID()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *MongoLogRepository) GetAllLogs(ctx context.Context, page, limit int) ([]*models.BootstrapLog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	var logs []*models.BootstrapLog
	skip := (page - 1) * limit
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *MongoLogRepository) GetLogsByRunID(ctx context.Context, runID string) ([]*models.BootstrapLog, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var logs []*models.BootstrapLog
	// _id breaks ties between steps saved within the same millisecond.
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"runId": runID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
