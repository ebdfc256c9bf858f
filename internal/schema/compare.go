package schema

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

// SameValidator reports whether a validator read back from the server
// matches the declared one. Numbers compare by value so a validator written
// by another client with doubles still matches one written with ints.
func SameValidator(declared bson.D, live bson.Raw) (bool, error) {
	if len(live) == 0 {
		return false, nil
	}
	raw, err := bson.Marshal(declared)
	if err != nil {
		return false, fmt.Errorf("failed to marshal validator: %w", err)
	}
	var want, got bson.M
	if err := bson.Unmarshal(raw, &want); err != nil {
		return false, err
	}
	if err := bson.Unmarshal(live, &got); err != nil {
		return false, fmt.Errorf("failed to decode live validator: %w", err)
	}
	return equalValue(want, got), nil
}

func equalValue(a, b interface{}) bool {
	if na, ok := numeric(a); ok {
		nb, ok := numeric(b)
		return ok && na == nb
	}
	switch x := a.(type) {
	case bson.M:
		y, ok := asMap(b)
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !equalValue(v, w) {
				return false
			}
		}
		return true
	case bson.D:
		m, _ := asMap(x)
		return equalValue(m, b)
	case bson.A:
		y, ok := b.(bson.A)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !equalValue(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func asMap(v interface{}) (bson.M, bool) {
	switch x := v.(type) {
	case bson.M:
		return x, true
	case bson.D:
		m := bson.M{}
		for _, e := range x {
			m[e.Key] = e.Value
		}
		return m, true
	}
	return nil, false
}

// Matches reports whether a live index has exactly this key pattern, in
// order, and the same uniqueness.
func (i IndexSpec) Matches(keys bson.Raw, unique bool) bool {
	if unique != i.Unique {
		return false
	}
	elems, err := keys.Elements()
	if err != nil || len(elems) != len(i.Keys) {
		return false
	}
	for idx, e := range elems {
		if e.Key() != i.Keys[idx] {
			return false
		}
		if n, ok := rawNumber(e.Value()); !ok || n != 1 {
			return false
		}
	}
	return true
}

func rawNumber(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bson.TypeInt32:
		return float64(v.Int32()), true
	case bson.TypeInt64:
		return float64(v.Int64()), true
	case bson.TypeDouble:
		return v.Double(), true
	}
	return 0, false
}
