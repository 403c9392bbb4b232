package query

import "fmt"

// Condition represents a WHERE clause condition. Implementations generate SQL
// fragments and parameter maps using Spanner's named parameter format.
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("status", "active") generates "status = @p0"
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "=", value: value}
}

// Gte creates a WHERE condition for >= comparison.
func Gte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: ">=", value: value}
}

// Lte creates a WHERE condition for <= comparison.
func Lte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "<=", value: value}
}

type binaryCondition struct {
	field string
	op    string
	value interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// IsNull creates a WHERE condition for NULL checks.
func IsNull(field string) Condition {
	return &nullCondition{field: field, negate: false}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if c.negate {
		return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
	}
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}
