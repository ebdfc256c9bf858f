package schema

import (
	"go.mongodb.org/mongo-driver/bson"
)

// BSON type aliases accepted by $jsonSchema.
const (
	TypeObject = "object"
	TypeString = "string"
	TypeInt    = "int"
)

// FieldRule constrains one top-level field. Zero values mean "no constraint".
type FieldRule struct {
	Name        string
	BSONType    string
	Pattern     string
	MinLength   int
	MaxLength   int
	Minimum     *int64
	Enum        []string
	Description string
}

// CollectionSchema is the validator of one collection.
type CollectionSchema struct {
	Name     string
	Required []string
	Fields   []FieldRule
}

func (s CollectionSchema) Field(name string) (FieldRule, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldRule{}, false
}

// JSONSchema renders the validator document passed to createCollection and collMod.
func (s CollectionSchema) JSONSchema() bson.D {
	properties := bson.D{}
	for _, f := range s.Fields {
		properties = append(properties, bson.E{Key: f.Name, Value: f.property()})
	}

	required := bson.A{}
	for _, name := range s.Required {
		required = append(required, name)
	}

	return bson.D{{Key: "$jsonSchema", Value: bson.D{
		{Key: "bsonType", Value: TypeObject},
		{Key: "required", Value: required},
		{Key: "properties", Value: properties},
	}}}
}

func (f FieldRule) property() bson.D {
	prop := bson.D{}
	if f.BSONType != "" {
		prop = append(prop, bson.E{Key: "bsonType", Value: f.BSONType})
	}
	if f.Pattern != "" {
		prop = append(prop, bson.E{Key: "pattern", Value: f.Pattern})
	}
	if f.MinLength > 0 {
		prop = append(prop, bson.E{Key: "minLength", Value: int32(f.MinLength)})
	}
	if f.MaxLength > 0 {
		prop = append(prop, bson.E{Key: "maxLength", Value: int32(f.MaxLength)})
	}
	if f.Minimum != nil {
		prop = append(prop, bson.E{Key: "minimum", Value: int32(*f.Minimum)})
	}
	if len(f.Enum) > 0 {
		values := bson.A{}
		for _, v := range f.Enum {
			values = append(values, v)
		}
		prop = append(prop, bson.E{Key: "enum", Value: values})
	}
	if f.Description != "" {
		prop = append(prop, bson.E{Key: "description", Value: f.Description})
	}
	return prop
}

func minimum(v int64) *int64 { return &v }
