package query

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tells the translator how to cast raw query values for a field.
type Kind int

// Field kinds. Fields missing from a Schema are matched as strings.
const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindObjectID
	KindTime
)

// Schema maps document field names to their kinds.
type Schema map[string]Kind

// storageField maps the API name of a field to its document name.
func storageField(f string) string {
	if f == "id" {
		return "_id"
	}
	return f
}

// Filter builds the storage filter. Conditions on the same field are merged
// into one operator document, e.g. {tuition: {$gte: 1000, $lt: 5000}}.
// An empty result matches every document.
func (q Query) Filter(s Schema) (bson.D, error) {
	filter := bson.D{}
	index := make(map[string]int)

	for _, c := range q.Conditions {
		field := storageField(c.Field)
		kind := s[field]
		if field == "_id" {
			kind = KindObjectID
		}

		vals := make([]interface{}, 0, len(c.Values))
		for _, raw := range c.Values {
			v, err := cast(kind, raw)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", c.Field, err)
			}
			vals = append(vals, v)
		}

		var op string
		var value interface{}
		switch {
		case c.Op == OpIn:
			op, value = "$in", vals
		case c.Op == OpEq && len(vals) > 1:
			op, value = "$in", vals
		case c.Op == OpEq:
			if len(vals) == 0 {
				continue
			}
			value = vals[0]
		default:
			if len(vals) == 0 {
				continue
			}
			op, value = "$"+string(c.Op), vals[len(vals)-1]
		}

		if op == "" {
			if i, ok := index[field]; ok {
				if ops, isOps := filter[i].Value.(bson.D); isOps {
					filter[i].Value = append(ops, primitive.E{Key: "$eq", Value: value})
					continue
				}
			}
			index[field] = len(filter)
			filter = append(filter, primitive.E{Key: field, Value: value})
			continue
		}

		if i, ok := index[field]; ok {
			switch cur := filter[i].Value.(type) {
			case bson.D:
				filter[i].Value = append(cur, primitive.E{Key: op, Value: value})
			default:
				filter[i].Value = bson.D{{Key: "$eq", Value: cur}, {Key: op, Value: value}}
			}
			continue
		}
		index[field] = len(filter)
		filter = append(filter, primitive.E{Key: field, Value: bson.D{{Key: op, Value: value}}})
	}

	return filter, nil
}

// Projection returns the selected fields, or nil when all fields are selected.
// The document id is always included.
func (q Query) Projection() bson.D {
	if len(q.Select) == 0 {
		return nil
	}
	proj := bson.D{}
	for _, f := range q.Select {
		proj = append(proj, primitive.E{Key: storageField(f), Value: 1})
	}
	return proj
}

// SortDoc returns the sort order in storage syntax.
func (q Query) SortDoc() bson.D {
	sortDoc := bson.D{}
	for _, f := range q.Sort {
		dir := 1
		if f.Desc {
			dir = -1
		}
		sortDoc = append(sortDoc, primitive.E{Key: storageField(f.Field), Value: dir})
	}
	return sortDoc
}

func cast(kind Kind, raw string) (interface{}, error) {
	switch kind {
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", raw, ErrInvalid)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean: %w", raw, ErrInvalid)
		}
		return b, nil
	case KindObjectID:
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid id: %w", raw, ErrInvalid)
		}
		return id, nil
	case KindTime:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not an RFC 3339 time: %w", raw, ErrInvalid)
		}
		return t, nil
	default:
		return raw, nil
	}
}
