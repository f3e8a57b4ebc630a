package store

// FilterOp enumerates the filter kinds the Record Store supports.
type FilterOp string

const (
	OpEq      FilterOp = "eq"
	OpIn      FilterOp = "in"
	OpILike   FilterOp = "ilike" // case-insensitive substring
	OpGt      FilterOp = "gt"
	OpNotNull FilterOp = "not_null"
)

// Filter is one predicate on one field.
type Filter struct {
	Field  string
	Op     FilterOp
	Value  interface{}
	Values []string // OpIn only
}

// Query is an immutable-ish builder for a filtered read. Builder methods
// return a copy so partially built queries can be reused safely.
type Query struct {
	filters []Filter
	limit   int
}

func NewQuery() Query {
	return Query{}
}

func (q Query) with(f Filter) Query {
	filters := make([]Filter, len(q.filters), len(q.filters)+1)
	copy(filters, q.filters)
	q.filters = append(filters, f)
	return q
}

// Eq matches field equal to value.
func (q Query) Eq(field, value string) Query {
	return q.with(Filter{Field: field, Op: OpEq, Value: value})
}

// In matches field equal to any of values.
func (q Query) In(field string, values ...string) Query {
	return q.with(Filter{Field: field, Op: OpIn, Values: values})
}

// ILike matches field containing substring, case-insensitively.
func (q Query) ILike(field, substring string) Query {
	return q.with(Filter{Field: field, Op: OpILike, Value: substring})
}

// Gt matches field strictly greater than value.
func (q Query) Gt(field string, value float64) Query {
	return q.with(Filter{Field: field, Op: OpGt, Value: value})
}

// NotNull matches rows where field is present.
func (q Query) NotNull(field string) Query {
	return q.with(Filter{Field: field, Op: OpNotNull})
}

// Limit caps the result count. Zero means no cap.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// Filters returns the predicates in build order.
func (q Query) Filters() []Filter {
	return q.filters
}

// LimitValue returns the configured result cap.
func (q Query) LimitValue() int {
	return q.limit
}

// HasFilter reports whether the query constrains field with op. Test helper
// for asserting handler query shapes.
func (q Query) HasFilter(field string, op FilterOp) bool {
	for _, f := range q.filters {
		if f.Field == field && f.Op == op {
			return true
		}
	}
	return false
}
