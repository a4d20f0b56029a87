// Package query turns list-endpoint query strings into storage filters,
// projections, sort orders and pagination windows.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Reserved query keys, never treated as filters.
const (
	KeySelect = "select"
	KeySort   = "sort"
	KeyPage   = "page"
	KeyLimit  = "limit"
)

// Defaults applied when the request does not specify them.
const (
	DefaultPage  = 1
	DefaultLimit = 25
	DefaultSort  = "-createdAt"
)

// ErrInvalid is returned when the query string can't be translated.
var ErrInvalid = errors.New("invalid query")

// Operator is a comparison operator accepted in bracket notation, e.g. tuition[gte]=1000.
type Operator string

// Supported operators. OpEq is the implicit operator of a bare key.
const (
	OpEq  Operator = ""
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpIn  Operator = "in"
)

func parseOperator(s string) (Operator, bool) {
	switch op := Operator(s); op {
	case OpGt, OpGte, OpLt, OpLte, OpIn:
		return op, true
	}
	return "", false
}

// Condition is a single filter clause on a field.
type Condition struct {
	Field  string
	Op     Operator
	Values []string
}

// SortField is one component of a sort order.
type SortField struct {
	Field string
	Desc  bool
}

// Query is the parsed form of a list request.
type Query struct {
	Conditions []Condition
	Select     []string
	Sort       []SortField
	Page       int
	Limit      int
}

// Uses returns the first of fields the query filters, sorts or selects on.
// Nested paths count as a use of their top level field.
func (q Query) Uses(fields ...string) (string, bool) {
	names := make([]string, 0, len(q.Conditions)+len(q.Sort)+len(q.Select))
	for _, c := range q.Conditions {
		names = append(names, c.Field)
	}
	for _, s := range q.Sort {
		names = append(names, s.Field)
	}
	names = append(names, q.Select...)

	for _, f := range fields {
		for _, n := range names {
			if n == f || strings.HasPrefix(n, f+".") {
				return f, true
			}
		}
	}
	return "", false
}

var keyPattern = regexp.MustCompile(`^([^\[\]]+)(?:\[([^\[\]]*)\])?$`)

// Parse translates query-string values into a Query. Reserved keys are
// extracted, every other key becomes a condition. Keys are processed in
// lexical order so the same query string always yields the same Query.
func Parse(values url.Values) (Query, error) {
	q := Query{Page: DefaultPage, Limit: DefaultLimit}

	var err error
	if q.Page, err = positiveInt(values.Get(KeyPage), DefaultPage); err != nil {
		return Query{}, fmt.Errorf("page %w", err)
	}
	if q.Limit, err = positiveInt(values.Get(KeyLimit), DefaultLimit); err != nil {
		return Query{}, fmt.Errorf("limit %w", err)
	}

	q.Select = splitList(values.Get(KeySelect))

	sortSpec := values.Get(KeySort)
	if strings.TrimSpace(sortSpec) == "" {
		sortSpec = DefaultSort
	}
	for _, f := range splitList(sortSpec) {
		desc := strings.HasPrefix(f, "-")
		f = strings.TrimPrefix(f, "-")
		if f == "" {
			continue
		}
		q.Sort = append(q.Sort, SortField{Field: f, Desc: desc})
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		switch k {
		case KeySelect, KeySort, KeyPage, KeyLimit:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		m := keyPattern.FindStringSubmatch(k)
		if m == nil {
			return Query{}, fmt.Errorf("malformed key %q: %w", k, ErrInvalid)
		}
		field := m[1]
		if strings.HasPrefix(field, "$") {
			return Query{}, fmt.Errorf("field %q is not allowed: %w", field, ErrInvalid)
		}

		op := OpEq
		if m[2] != "" {
			var ok bool
			if op, ok = parseOperator(m[2]); !ok {
				return Query{}, fmt.Errorf("unsupported operator %q: %w", m[2], ErrInvalid)
			}
		}

		vals := values[k]
		if op == OpIn {
			var split []string
			for _, v := range vals {
				split = append(split, splitList(v)...)
			}
			vals = split
		}
		q.Conditions = append(q.Conditions, Condition{Field: field, Op: op, Values: vals})
	}

	return q, nil
}

// Selects reports whether field is part of the selection. An empty
// selection selects every field.
func (q Query) Selects(field string) bool {
	if len(q.Select) == 0 {
		return true
	}
	for _, f := range q.Select {
		if f == field {
			return true
		}
	}
	return false
}

func positiveInt(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("must be a positive integer: %w", ErrInvalid)
	}
	return n, nil
}

func splitList(s string) []string {
	var res []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
