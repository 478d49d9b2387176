package repository

// ClauseOp identifies how a single criteria clause compares a field
// against its value.
type ClauseOp int

const (
	// OpEqual matches the field exactly.
	OpEqual ClauseOp = iota
	// OpContains matches when the field contains the value as a substring.
	OpContains
)

// Clause is one field comparison inside a Criteria.
type Clause struct {
	Field string
	Op    ClauseOp
	Value string
}

// Criteria is a composable filter description evaluated by a Store.
// Clauses combine with logical AND. A clause whose value is empty is
// dropped at build time, so callers can feed optional query parameters
// straight into the builder: an absent parameter simply does not filter.
//
// The criteria carries data only; translating it into a backend query is
// the store implementation's job, which keeps queries parameterized and
// rules out string-built filters.
type Criteria struct {
	clauses []Clause
}

// NewCriteria returns an empty criteria that matches everything.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Equal adds an exact-match clause. Empty values are ignored.
func (c *Criteria) Equal(field, value string) *Criteria {
	if value != "" {
		c.clauses = append(c.clauses, Clause{Field: field, Op: OpEqual, Value: value})
	}

	return c
}

// Contains adds a substring-match clause. Empty values are ignored.
func (c *Criteria) Contains(field, value string) *Criteria {
	if value != "" {
		c.clauses = append(c.clauses, Clause{Field: field, Op: OpContains, Value: value})
	}

	return c
}

// Clauses returns the effective clauses in the order they were added.
func (c *Criteria) Clauses() []Clause {
	if c == nil {
		return nil
	}

	return c.clauses
}

// Empty reports whether the criteria filters on anything at all.
func (c *Criteria) Empty() bool {
	return c == nil || len(c.clauses) == 0
}
