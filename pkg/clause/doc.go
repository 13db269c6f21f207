// Package clause groups SQL tokens into a tree of clauses.
//
// A statement is split on top-level clause keywords (SELECT, FROM, WHERE,
// the JOIN family, GROUP BY, HAVING, ORDER BY, LIMIT, UNION, INSERT, UPDATE,
// DELETE, VALUES, SET, ...). The set of clause keywords is the closed Keyword
// enum; anything else maps to Unrecognized and a statement led by it is
// rejected with ErrUnsupportedClause so callers can pass it through.
//
// Parentheses are paired before segmentation. A parenthesized run whose first
// token starts a statement (SELECT, WITH, VALUES) becomes a Subquery and is
// segmented recursively; any other run is kept as an opaque Group.
//
// Example:
//
//	stmt, err := clause.ParseString("SELECT a, b FROM t WHERE a IN (SELECT x FROM u)")
//	if err != nil {
//		return err
//	}
//
//	stmt.Clauses[2].Keyword // WHERE
package clause
