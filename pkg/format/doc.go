// Package format renders segmented SQL statements as canonical text.
//
// Block layout puts every clause keyword on its own line at the statement's
// base indent and the clause body one unit deeper. Bodies are broken up
// according to their clause:
//   - list bodies (SELECT, FROM, GROUP BY, ORDER BY, SET, VALUES, ...) put each
//     top-level comma separated item on its own line, comma attached
//   - predicate bodies (WHERE, HAVING, ON) start a new line before each
//     top-level AND / OR
//   - subqueries are rendered recursively one unit deeper than the body that
//     holds them, with the closing parenthesis on its own line
//
// Parenthesized expressions that are not subqueries keep their original
// spacing. A terminating semicolon is kept when present and never added.
// Formatting the output again yields the same bytes.
//
// Usage:
//
//	formatter := format.New(format.Defaults)
//
//	out, err := formatter.SQL("select a, b from t where a = 1 and b = 2")
//	if err != nil {
//		// out holds the trimmed input, unchanged
//	}
//
// Output:
//
//	select
//	    a,
//	    b
//	from
//	    t
//	where
//	    a = 1
//	    and b = 2
//
// Inline renders the same tree on a single line, for SQL embedded in one-line
// string literals.
package format
