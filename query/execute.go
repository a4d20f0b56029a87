package query

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Lookup resolves a reference field into a subset of the referenced document.
type Lookup struct {
	From   string
	Field  string
	Select []string
}

// Options configure Execute.
type Options struct {
	Schema Schema
	// Hidden fields can't be filtered, sorted or selected on.
	Hidden []string
	Lookup *Lookup
}

// Result is the envelope returned by list endpoints.
type Result[T any] struct {
	Success    bool       `json:"success"`
	Count      int        `json:"count"`
	Pagination Pagination `json:"pagination"`
	Data       []T        `json:"data"`

	fields []string
}

// MarshalJSON renders Data restricted to the selected fields, if any.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	type envelope struct {
		Success    bool        `json:"success"`
		Count      int         `json:"count"`
		Pagination Pagination  `json:"pagination"`
		Data       interface{} `json:"data"`
	}
	env := envelope{Success: r.Success, Count: r.Count, Pagination: r.Pagination, Data: r.Data}
	if r.Data == nil {
		env.Data = []T{}
	}
	if len(r.fields) == 0 {
		return json.Marshal(env)
	}

	keep := map[string]bool{"id": true}
	for _, f := range r.fields {
		keep[f] = true
	}
	data := make([]map[string]json.RawMessage, 0, len(r.Data))
	for _, item := range r.Data {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		all := make(map[string]json.RawMessage)
		if err := json.Unmarshal(b, &all); err != nil {
			return nil, err
		}
		for k := range all {
			if !keep[k] {
				delete(all, k)
			}
		}
		data = append(data, all)
	}
	env.Data = data
	return json.Marshal(env)
}

// Pipeline builds the aggregation pipeline that fetches the page described by w.
func Pipeline(q Query, filter bson.D, w Window, lookup *Lookup) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
	}
	if s := q.SortDoc(); len(s) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: s}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: w.StartIndex}},
		bson.D{{Key: "$limit", Value: w.EndIndex - w.StartIndex}},
	)

	if lookup != nil && q.Selects(lookup.Field) {
		match := bson.D{{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", "$$ref"}}}}}
		sub := mongo.Pipeline{{{Key: "$match", Value: match}}}
		if len(lookup.Select) > 0 {
			proj := bson.D{}
			for _, f := range lookup.Select {
				proj = append(proj, primitive.E{Key: f, Value: 1})
			}
			sub = append(sub, bson.D{{Key: "$project", Value: proj}})
		}
		pipeline = append(pipeline,
			bson.D{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: lookup.From},
				{Key: "let", Value: bson.D{{Key: "ref", Value: "$" + lookup.Field}}},
				{Key: "pipeline", Value: sub},
				{Key: "as", Value: lookup.Field},
			}}},
			bson.D{{Key: "$unwind", Value: bson.D{
				{Key: "path", Value: "$" + lookup.Field},
				{Key: "preserveNullAndEmptyArrays", Value: true},
			}}},
		)
	}

	if proj := q.Projection(); proj != nil {
		pipeline = append(pipeline, bson.D{{Key: "$project", Value: proj}})
	}

	return pipeline
}

// Execute counts the documents matching q, then fetches the requested page.
func Execute[T any](ctx context.Context, coll *mongo.Collection, q Query, opts Options) (*Result[T], error) {
	if f, ok := q.Uses(opts.Hidden...); ok {
		return nil, fmt.Errorf("field %s can't be queried: %w", f, ErrInvalid)
	}

	filter, err := q.Filter(opts.Schema)
	if err != nil {
		return nil, err
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("can't count documents: %w", err)
	}

	w := Paginate(q.Page, q.Limit, total)

	cur, err := coll.Aggregate(ctx, Pipeline(q, filter, w, opts.Lookup))
	if err != nil {
		return nil, fmt.Errorf("can't execute aggregate: %w", err)
	}

	data := make([]T, 0)
	if err = cur.All(ctx, &data); err != nil {
		return nil, fmt.Errorf("can't decode documents: %w", err)
	}

	return &Result[T]{
		Success:    true,
		Count:      len(data),
		Pagination: w.Pagination,
		Data:       data,
		fields:     q.Select,
	}, nil
}
