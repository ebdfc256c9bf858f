package service

import (
	"context"
	"sync"

	"github.com/mehrbod2002/brokerdb/internal/models"
	"github.com/mehrbod2002/brokerdb/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeSchemaRepo keeps collections and indexes in memory and answers with
// the same error codes the server uses.
type fakeSchemaRepo struct {
	mu          sync.Mutex
	collections map[string]bson.Raw
	indexes     map[string][]repository.IndexInfo
	indexErr    map[string]error
	calls       []string
}

func newFakeSchemaRepo() *fakeSchemaRepo {
	return &fakeSchemaRepo{
		collections: map[string]bson.Raw{},
		indexes:     map[string][]repository.IndexInfo{},
		indexErr:    map[string]error{},
	}
}

func (f *fakeSchemaRepo) DatabaseName() string { return "stock_brokerage" }

func (f *fakeSchemaRepo) CreateCollection(_ context.Context, name string, validator bson.D) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create "+name)
	if _, ok := f.collections[name]; ok {
		return mongo.CommandError{Code: 48, Name: "NamespaceExists", Message: "Collection already exists."}
	}
	f.collections[name] = mustRaw(validator)
	f.ensureIDIndex(name)
	return nil
}

func (f *fakeSchemaRepo) GetValidator(_ context.Context, name string) (bson.Raw, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.collections[name]
	return v, ok, nil
}

func (f *fakeSchemaRepo) UpdateValidator(_ context.Context, name string, validator bson.D) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "collMod "+name)
	f.collections[name] = mustRaw(validator)
	return nil
}

func (f *fakeSchemaRepo) CreateIndexes(_ context.Context, collection string, indexModels []mongo.IndexModel) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "indexes "+collection)
	if err := f.indexErr[collection]; err != nil {
		return nil, err
	}
	if _, ok := f.collections[collection]; !ok {
		f.collections[collection] = nil
	}
	f.ensureIDIndex(collection)

	var names []string
	for _, m := range indexModels {
		opts := m.Options
		if opts == nil {
			opts = options.Index()
		}
		info := repository.IndexInfo{Name: *opts.Name, Keys: mustRaw(m.Keys)}
		if opts.Unique != nil {
			info.Unique = *opts.Unique
		}
		if !f.hasIndex(collection, info.Name) {
			f.indexes[collection] = append(f.indexes[collection], info)
		}
		names = append(names, info.Name)
	}
	return names, nil
}

func (f *fakeSchemaRepo) ListIndexes(_ context.Context, collection string) ([]repository.IndexInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]repository.IndexInfo(nil), f.indexes[collection]...), nil
}

func (f *fakeSchemaRepo) ensureIDIndex(collection string) {
	if !f.hasIndex(collection, "_id_") {
		f.indexes[collection] = append(f.indexes[collection], repository.IndexInfo{Name: "_id_", Keys: mustRaw(bson.D{{Key: "_id", Value: 1}})})
	}
}

func (f *fakeSchemaRepo) hasIndex(collection, name string) bool {
	for _, idx := range f.indexes[collection] {
		if idx.Name == name {
			return true
		}
	}
	return false
}

func (f *fakeSchemaRepo) dropIndex(collection, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.indexes[collection][:0]
	for _, idx := range f.indexes[collection] {
		if idx.Name != name {
			kept = append(kept, idx)
		}
	}
	f.indexes[collection] = kept
}

type fakeSymbolRepo struct {
	mu      sync.Mutex
	symbols map[string]models.Symbol
	inserts int
}

func newFakeSymbolRepo() *fakeSymbolRepo {
	return &fakeSymbolRepo{symbols: map[string]models.Symbol{}}
}

func (f *fakeSymbolRepo) InsertSymbols(_ context.Context, symbols []models.Symbol) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	for i, s := range symbols {
		if _, ok := f.symbols[s.Symbol]; ok {
			return mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{{
				WriteError: mongo.WriteError{Index: i, Code: 11000, Message: "E11000 duplicate key error"},
			}}}
		}
		f.symbols[s.Symbol] = s
	}
	return nil
}

func (f *fakeSymbolRepo) CountBySymbols(_ context.Context, tickers []string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, t := range tickers {
		if _, ok := f.symbols[t]; ok {
			n++
		}
	}
	return n, nil
}

func (f *fakeSymbolRepo) GetSymbol(_ context.Context, ticker string) (*models.Symbol, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.symbols[ticker]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSymbolRepo) GetAllSymbols(_ context.Context) ([]*models.Symbol, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Symbol
	for _, s := range f.symbols {
		s := s
		out = append(out, &s)
	}
	return out, nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*models.BootstrapLog
}

func (f *fakeLogRepo) SaveLog(_ context.Context, log *models.BootstrapLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeLogRepo) GetAllLogs(_ context.Context, _, _ int) ([]*models.BootstrapLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logs, nil
}

func (f *fakeLogRepo) GetLogsByRunID(_ context.Context, runID string) ([]*models.BootstrapLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.BootstrapLog
	for _, l := range f.logs {
		if l.RunID == runID {
			out = append(out, l)
		}
	}
	return out, nil
}

func mustRaw(v interface{}) bson.Raw {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}

func indexInfo(name string, keys bson.D, unique bool) repository.IndexInfo {
	return repository.IndexInfo{Name: name, Keys: mustRaw(keys), Unique: unique}
}
