package schema

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec is an ascending single or compound index.
type IndexSpec struct {
	Collection string
	Keys       []string
	Unique     bool
}

// Name returns the name the server would generate for the key pattern.
func (i IndexSpec) Name() string {
	parts := make([]string, 0, len(i.Keys))
	for _, k := range i.Keys {
		parts = append(parts, k+"_1")
	}
	return strings.Join(parts, "_")
}

func (i IndexSpec) KeyDocument() bson.D {
	keys := bson.D{}
	for _, k := range i.Keys {
		keys = append(keys, bson.E{Key: k, Value: 1})
	}
	return keys
}

func (i IndexSpec) Model() mongo.IndexModel {
	opts := options.Index().SetName(i.Name())
	if i.Unique {
		opts.SetUnique(true)
	}
	return mongo.IndexModel{Keys: i.KeyDocument(), Options: opts}
}

func index(collection string, keys ...string) IndexSpec {
	return IndexSpec{Collection: collection, Keys: keys}
}

func unique(collection string, keys ...string) IndexSpec {
	return IndexSpec{Collection: collection, Keys: keys, Unique: true}
}

// Indexes is the index table in creation order.
var Indexes = []IndexSpec{
	unique(CollectionUsers, "email"),
	index(CollectionUsers, "status"),
	index(CollectionUsers, "createdAt"),

	unique(CollectionSymbols, "symbol"),
	index(CollectionSymbols, "exchange"),
	index(CollectionSymbols, "active"),

	index(CollectionOrders, "userId"),
	index(CollectionOrders, "symbolId"),
	index(CollectionOrders, "status"),
	index(CollectionOrders, "createdAt"),
	index(CollectionOrders, "userId", "status"),

	index(CollectionHoldings, "userId"),
	index(CollectionHoldings, "symbolId"),
	unique(CollectionHoldings, "userId", "symbolId"),

	unique(CollectionWallets, "userId"),

	index(CollectionTransactions, "userId"),
	index(CollectionTransactions, "type"),
	index(CollectionTransactions, "status"),
	index(CollectionTransactions, "createdAt"),
	index(CollectionTransactions, "userId", "createdAt"),

	index(CollectionUserWatchlists, "userId"),
	index(CollectionUserWatchlists, "symbolId"),
	unique(CollectionUserWatchlists, "userId", "symbolId"),
}
