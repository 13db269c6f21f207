package clause

import (
	"github.com/james-woods/format-sql/pkg/lexer"
)

type (
	// Node is an element of a clause body: a *Leaf, a *Group or a *Subquery.
	Node interface {
		node()
	}

	// Leaf is a single token. Space records whether whitespace preceded the
	// token in the source, which decides whether the renderer separates it
	// from the previous token when both end up on the same line.
	Leaf struct {
		Token lexer.Token
		Space bool
	}

	// Group is a parenthesized run that is not a subquery, such as a function
	// argument list or a VALUES tuple. It is rendered on one line.
	Group struct {
		Open  *Leaf
		Close *Leaf
		Body  []Node
	}

	// Subquery is a parenthesized statement rendered on its own indented lines.
	Subquery struct {
		Open      *Leaf
		Close     *Leaf
		Statement *Statement
	}

	// Clause is a clause keyword with its body.
	Clause struct {
		Keyword   Keyword
		Token     *Leaf
		Modifiers []*Leaf
		Body      []Node
		Depth     int
	}

	// Statement is a complete SQL statement. Leading holds comments found
	// before the first clause, Terminator the closing semicolon if present.
	Statement struct {
		Leading    []*Leaf
		Clauses    []*Clause
		Terminator *Leaf
		Depth      int
	}
)

func (*Leaf) node()     {}
func (*Group) node()    {}
func (*Subquery) node() {}
