package query

// Clause is a backend-agnostic predicate description. The set of variants is
// closed: a clause is either a boolean combinator (And/Or) or one of the leaf
// predicates (Eq, Range, Contains, After). Both the SQL translation and the
// in-memory evaluator switch exhaustively over these types.
type Clause interface {
	isClause()
}

// And matches when every child clause matches. An empty And matches all rows.
type And struct {
	Clauses []Clause
}

// Or matches when at least one child clause matches. An empty Or matches
// nothing.
type Or struct {
	Clauses []Clause
}

// Eq matches rows whose Field equals Value.
type Eq struct {
	Field string
	Value any
}

// Range matches rows whose numeric Field lies within the given inclusive
// bounds. A nil bound is open.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// Contains matches rows whose string Field contains Value, case-insensitively.
type Contains struct {
	Field string
	Value string
}

// After matches rows whose time Field is strictly after Value.
type After struct {
	Field string
	Value any
}

func (And) isClause()      {}
func (Or) isClause()       {}
func (Eq) isClause()       {}
func (Range) isClause()    {}
func (Contains) isClause() {}
func (After) isClause()    {}

// Order is one term of a sort descriptor.
type Order struct {
	Field string
	Desc  bool
}
