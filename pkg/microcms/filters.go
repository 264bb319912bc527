package microcms

import (
	"strings"
)

// FilterOperator is a comparison understood by the filters parameter.
type FilterOperator string

// Filter operators.
const (
	OpEquals      FilterOperator = "equals"
	OpNotEquals   FilterOperator = "not_equals"
	OpLessThan    FilterOperator = "less_than"
	OpGreaterThan FilterOperator = "greater_than"
	OpContains    FilterOperator = "contains"
	OpNotContains FilterOperator = "not_contains"
	OpBeginsWith  FilterOperator = "begins_with"
	OpExists      FilterOperator = "exists"
	OpNotExists   FilterOperator = "not_exists"
)

const (
	joinAnd = "[and]"
	joinOr  = "[or]"
)

// FilterBuilder assembles a filters expression such as
// "category[equals]news[and]publishedAt[greater_than]2024-01-01".
//
// Conditions are joined left to right in the order they are added; the API has
// no grouping syntax. The result is an ordinary string for
// ListParams.Filters.
type FilterBuilder struct {
	expr strings.Builder
}

// NewFilterBuilder creates an empty filter builder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Where adds a condition joined with [and].
func (b *FilterBuilder) Where(field string, op FilterOperator, value string) *FilterBuilder {
	return b.add(joinAnd, field, op, value)
}

// OrWhere adds a condition joined with [or].
func (b *FilterBuilder) OrWhere(field string, op FilterOperator, value string) *FilterBuilder {
	return b.add(joinOr, field, op, value)
}

// WhereExists adds a field[exists] condition joined with [and].
func (b *FilterBuilder) WhereExists(field string) *FilterBuilder {
	return b.add(joinAnd, field, OpExists, "")
}

// WhereNotExists adds a field[not_exists] condition joined with [and].
func (b *FilterBuilder) WhereNotExists(field string) *FilterBuilder {
	return b.add(joinAnd, field, OpNotExists, "")
}

func (b *FilterBuilder) add(join, field string, op FilterOperator, value string) *FilterBuilder {
	if field == "" {
		return b
	}

	if b.expr.Len() > 0 {
		b.expr.WriteString(join)
	}

	b.expr.WriteString(field)
	b.expr.WriteByte('[')
	b.expr.WriteString(string(op))
	b.expr.WriteByte(']')

	// exists and not_exists take no operand
	if op != OpExists && op != OpNotExists {
		b.expr.WriteString(value)
	}

	return b
}

// Build returns the expression, or "" if no condition was added.
func (b *FilterBuilder) Build() string {
	return b.expr.String()
}
