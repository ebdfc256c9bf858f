package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Violation is one rule a document breaks.
type Violation struct {
	Field   string
	Rule    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Field, v.Message, v.Rule)
}

// ValidationError lists every violation found for one document.
type ValidationError struct {
	Collection string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("document failed %s validation: %s", e.Collection, strings.Join(parts, "; "))
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func compiled(pattern string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	re, ok := patternCache[pattern]
	if !ok {
		re = regexp.MustCompile(pcreAnchors(pattern))
		patternCache[pattern] = re
	}
	return re
}

// pcreAnchors rewrites a trailing $ to also match before one final newline,
// as it does on the server.
func pcreAnchors(pattern string) string {
	if strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`) {
		return pattern[:len(pattern)-1] + `\n?\z`
	}
	return pattern
}

// Check evaluates doc against the schema the way the server's $jsonSchema
// validator does: keywords other than bsonType only apply to values of the
// matching kind, and fields without a rule are accepted. Patterns run on RE2
// with a trailing $ widened to PCRE's end-or-final-newline.
func (s CollectionSchema) Check(doc bson.M) []Violation {
	var out []Violation
	for _, name := range s.Required {
		if _, ok := doc[name]; !ok {
			out = append(out, Violation{Field: name, Rule: "required", Message: "field is required"})
		}
	}
	for _, f := range s.Fields {
		v, ok := doc[f.Name]
		if !ok {
			continue
		}
		out = append(out, f.check(v)...)
	}
	return out
}

// Validate marshals v to BSON and checks the result. It returns a
// *ValidationError when any rule is broken.
func (s CollectionSchema) Validate(v interface{}) error {
	raw, err := bson.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s document: %w", s.Name, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal %s document: %w", s.Name, err)
	}
	if violations := s.Check(doc); len(violations) > 0 {
		return &ValidationError{Collection: s.Name, Violations: violations}
	}
	return nil
}

func (f FieldRule) check(v interface{}) []Violation {
	var out []Violation
	fail := func(rule, msg string) {
		if f.Description != "" {
			msg = f.Description
		}
		out = append(out, Violation{Field: f.Name, Rule: rule, Message: msg})
	}

	if f.BSONType != "" && bsonTypeOf(v) != f.BSONType {
		fail("bsonType", "must be of type "+f.BSONType)
	}

	if str, ok := v.(string); ok {
		n := utf8.RuneCountInString(str)
		if f.MinLength > 0 && n < f.MinLength {
			fail("minLength", fmt.Sprintf("must be at least %d characters", f.MinLength))
		}
		if f.MaxLength > 0 && n > f.MaxLength {
			fail("maxLength", fmt.Sprintf("must be at most %d characters", f.MaxLength))
		}
		if f.Pattern != "" && !compiled(f.Pattern).MatchString(str) {
			fail("pattern", "must match "+f.Pattern)
		}
	}

	if f.Minimum != nil {
		if n, ok := numeric(v); ok && n < float64(*f.Minimum) {
			fail("minimum", fmt.Sprintf("must be at least %d", *f.Minimum))
		}
	}

	if len(f.Enum) > 0 {
		str, ok := v.(string)
		if !ok || !contains(f.Enum, str) {
			fail("enum", "must be one of "+strings.Join(f.Enum, ", "))
		}
	}
	return out
}

// bsonTypeOf names the $jsonSchema bsonType the driver would encode v as.
func bsonTypeOf(v interface{}) string {
	switch x := v.(type) {
	case string:
		return TypeString
	case int32, int8, int16:
		return TypeInt
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return TypeInt
		}
		return "long"
	case int64:
		return "long"
	case float32, float64:
		return "double"
	case bool:
		return "bool"
	case bson.M, bson.D, map[string]interface{}:
		return TypeObject
	case bson.A, []interface{}:
		return "array"
	case primitive.ObjectID:
		return "objectId"
	case primitive.DateTime:
		return "date"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func numeric(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
