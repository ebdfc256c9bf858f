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

type SymbolRepository interface {
	InsertSymbols(ctx context.Context, symbols []models.Symbol) error
	CountBySymbols(ctx context.Context, tickers []string) (int64, error)
	GetSymbol(ctx context.Context, ticker string) (*models.Symbol, error)
	GetAllSymbols(ctx context.Context) ([]*models.Symbol, error)
}

type MongoSymbolRepository struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewSymbolRepository(client *mongo.Client, dbName, collectionName string, timeout time.Duration) SymbolRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoSymbolRepository{collection: collection, timeout: timeout}
}

// InsertSymbols writes all symbols in one ordered insert, stopping at the
// first duplicate.
func (r *MongoSymbolRepository) InsertSymbols(ctx context.Context, symbols []models.Symbol) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	docs := make([]interface{}, 0, len(symbols))
	for i := range symbols {
		if symbols[i].ID.IsZero() {
			symbols[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, symbols[i])
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

func (r *MongoSymbolRepository) CountBySymbols(ctx context.Context, tickers []string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.collection.CountDocuments(ctx, bson.M{"symbol": bson.M{"$in": tickers}})
}

func (r *MongoSymbolRepository) GetSymbol(ctx context.Context, ticker string) (*models.Symbol, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var symbol models.Symbol
	err := r.collection.FindOne(ctx, bson.M{"symbol": ticker}).Decode(&symbol)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &symbol, nil
}

func (r *MongoSymbolRepository) GetAllSymbols(ctx context.Context) ([]*models.Symbol, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var symbols []*models.Symbol
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "symbol", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &symbols); err != nil {
		return nil, err
	}
	return symbols, nil
}
