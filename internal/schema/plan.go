package schema

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

const DefaultDatabase = "stock_brokerage"

// Plan is everything the bootstrapper applies to one database.
type Plan struct {
	Database  string
	Validated []CollectionSchema
	Indexes   []IndexSpec
}

func DefaultPlan(database string) Plan {
	if database == "" {
		database = DefaultDatabase
	}
	return Plan{
		Database:  database,
		Validated: []CollectionSchema{Users, Symbols, Orders},
		Indexes:   Indexes,
	}
}

// Collections lists every collection the plan touches, validated ones first.
func (p Plan) Collections() []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range p.Validated {
		if !seen[s.Name] {
			seen[s.Name] = true
			out = append(out, s.Name)
		}
	}
	for _, i := range p.Indexes {
		if !seen[i.Collection] {
			seen[i.Collection] = true
			out = append(out, i.Collection)
		}
	}
	return out
}

// IndexesFor returns the plan's indexes on one collection, in order.
func (p Plan) IndexesFor(collection string) []IndexSpec {
	var out []IndexSpec
	for _, i := range p.Indexes {
		if i.Collection == collection {
			out = append(out, i)
		}
	}
	return out
}

func (p Plan) Schema(collection string) (CollectionSchema, bool) {
	for _, s := range p.Validated {
		if s.Name == collection {
			return s, true
		}
	}
	return CollectionSchema{}, false
}

type ValidatorDocument struct {
	Collection string          `json:"collection"`
	Validator  json.RawMessage `json:"validator"`
}

type IndexDocument struct {
	Collection string   `json:"collection"`
	Name       string   `json:"name"`
	Keys       []string `json:"keys"`
	Unique     bool     `json:"unique"`
}

// PlanDocument is the JSON view of a plan.
type PlanDocument struct {
	Database    string              `json:"database"`
	Collections []string            `json:"collections"`
	Validators  []ValidatorDocument `json:"validators"`
	Indexes     []IndexDocument     `json:"indexes"`
	SeedSymbols []string            `json:"seedSymbols"`
}

func (p Plan) Describe() (*PlanDocument, error) {
	doc := &PlanDocument{
		Database:    p.Database,
		Collections: p.Collections(),
		SeedSymbols: SeedTickers(),
	}
	for _, s := range p.Validated {
		raw, err := bson.MarshalExtJSON(s.JSONSchema(), false, false)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s validator: %w", s.Name, err)
		}
		doc.Validators = append(doc.Validators, ValidatorDocument{Collection: s.Name, Validator: raw})
	}
	for _, i := range p.Indexes {
		doc.Indexes = append(doc.Indexes, IndexDocument{
			Collection: i.Collection,
			Name:       i.Name(),
			Keys:       i.Keys,
			Unique:     i.Unique,
		})
	}
	return doc, nil
}
