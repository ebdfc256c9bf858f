package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mehrbod2002/brokerdb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newSymbolRepo(mt *mtest.T) *MongoSymbolRepository {
	return &MongoSymbolRepository{collection: mt.DB.Collection("symbols"), timeout: time.Second}
}

func seed() []models.Symbol {
	now := time.Now()
	return []models.Symbol{
		{Symbol: "AAPL", CompanyName: "Apple Inc.", Exchange: "NASDAQ", Active: true, CreatedAt: now},
		{Symbol: "MSFT", CompanyName: "Microsoft Corporation", Exchange: "NASDAQ", Active: true, CreatedAt: now},
	}
}

func TestSymbolRepository_InsertSymbols(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		symbols := seed()
		require.NoError(mt, newSymbolRepo(mt).InsertSymbols(context.Background(), symbols))
		for _, s := range symbols {
			assert.False(mt, s.ID.IsZero())
		}

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "insert", started.CommandName)
		assert.True(mt, started.Command.Lookup("ordered").Boolean())
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: stock_brokerage.symbols index: symbol_1 dup key: { symbol: \"AAPL\" }",
		}))

		err := newSymbolRepo(mt).InsertSymbols(context.Background(), seed())
		require.Error(mt, err)
		assert.True(mt, IsDuplicateKey(err))
	})
}

func TestSymbolRepository_CountBySymbols(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("count", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".symbols"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		n, err := newSymbolRepo(mt).CountBySymbols(context.Background(), []string{"AAPL", "MSFT", "TSLA"})
		require.NoError(mt, err)
		assert.EqualValues(mt, 2, n)
	})
}

func TestSymbolRepository_GetSymbol(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".symbols"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "symbol", Value: "TSLA"},
			{Key: "companyName", Value: "Tesla Inc."},
			{Key: "exchange", Value: "NASDAQ"},
			{Key: "active", Value: true},
		}))

		symbol, err := newSymbolRepo(mt).GetSymbol(context.Background(), "TSLA")
		require.NoError(mt, err)
		require.NotNil(mt, symbol)
		assert.Equal(mt, "Tesla Inc.", symbol.CompanyName)
		assert.True(mt, symbol.Active)
	})

	mt.Run("not found", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".symbols"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		symbol, err := newSymbolRepo(mt).GetSymbol(context.Background(), "NFLX")
		require.NoError(mt, err)
		assert.Nil(mt, symbol)
	})
}

func TestSymbolRepository_GetAllSymbols(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("all", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".symbols"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "symbol", Value: "AAPL"}, {Key: "companyName", Value: "Apple Inc."}, {Key: "exchange", Value: "NASDAQ"}},
			bson.D{{Key: "symbol", Value: "AMZN"}, {Key: "companyName", Value: "Amazon.com Inc."}, {Key: "exchange", Value: "NASDAQ"}},
		))

		symbols, err := newSymbolRepo(mt).GetAllSymbols(context.Background())
		require.NoError(mt, err)
		require.Len(mt, symbols, 2)
		assert.Equal(mt, "AAPL", symbols[0].Symbol)
		assert.Equal(mt, "AMZN", symbols[1].Symbol)
	})
}
