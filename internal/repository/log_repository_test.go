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

func TestLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save assigns id and timestamp", func(mt *mtest.T) {
		repo := &MongoLogRepository{collection: mt.DB.Collection("bootstrapLogs"), timeout: time.Second}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		entry := &models.BootstrapLog{RunID: "run-1", Step: "create-collection", Collection: "users", Outcome: models.OutcomeCreated}
		require.NoError(mt, repo.SaveLog(context.Background(), entry))
		assert.False(mt, entry.ID.IsZero())
		assert.False(mt, entry.Timestamp.IsZero())
	})

	mt.Run("by run id", func(mt *mtest.T) {
		repo := &MongoLogRepository{collection: mt.DB.Collection("bootstrapLogs"), timeout: time.Second}
		ns := mt.DB.Name() + ".bootstrapLogs"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "runId", Value: "run-1"}, {Key: "step", Value: "create-collection"}, {Key: "outcome", Value: "created"}},
			bson.D{{Key: "runId", Value: "run-1"}, {Key: "step", Value: "seed-symbols"}, {Key: "outcome", Value: "skipped"}},
		))

		logs, err := repo.GetLogsByRunID(context.Background(), "run-1")
		require.NoError(mt, err)
		require.Len(mt, logs, 2)
		assert.Equal(mt, models.OutcomeSkipped, logs[1].Outcome)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "run-1", started.Command.Lookup("filter", "runId").StringValue())

		sort, err := started.Command.Lookup("sort").Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, sort, 2)
		assert.Equal(mt, "timestamp", sort[0].Key())
		assert.Equal(mt, "_id", sort[1].Key())
	})

	mt.Run("page clamps to one", func(mt *mtest.T) {
		repo := &MongoLogRepository{collection: mt.DB.Collection("bootstrapLogs"), timeout: time.Second}
		ns := mt.DB.Name() + ".bootstrapLogs"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		logs, err := repo.GetAllLogs(context.Background(), 0, 20)
		require.NoError(mt, err)
		assert.Empty(mt, logs)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.EqualValues(mt, 0, started.Command.Lookup("skip").Int64())
		assert.EqualValues(mt, 20, started.Command.Lookup("limit").Int64())
	})
}
