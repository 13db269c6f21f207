package clause

import (
	"slices"
	"strings"

	"github.com/james-woods/format-sql/pkg/lexer"
)

// Keyword is the closed set of keywords that start a clause.
type Keyword int

const (
	// Unrecognized marks any keyword that does not start a clause. A statement
	// led by it is passed through unformatted.
	Unrecognized Keyword = iota
	With
	Select
	From
	Join
	On
	Using
	Where
	GroupBy
	Having
	Window
	OrderBy
	Limit
	Offset
	Union
	Insert
	Values
	Update
	Set
	Delete
	Returning
)

// Layout describes how a clause body is broken into lines.
type Layout int

const (
	// PlainBody renders the body on a single line.
	PlainBody Layout = iota
	// ListBody puts each top-level comma separated item on its own line.
	ListBody
	// PredicateBody starts a new line before each top-level AND / OR.
	PredicateBody
)

var keywordNames = [...]string{
	Unrecognized: "Unrecognized",
	With:         "WITH",
	Select:       "SELECT",
	From:         "FROM",
	Join:         "JOIN",
	On:           "ON",
	Using:        "USING",
	Where:        "WHERE",
	GroupBy:      "GROUP BY",
	Having:       "HAVING",
	Window:       "WINDOW",
	OrderBy:      "ORDER BY",
	Limit:        "LIMIT",
	Offset:       "OFFSET",
	Union:        "UNION",
	Insert:       "INSERT",
	Values:       "VALUES",
	Update:       "UPDATE",
	Set:          "SET",
	Delete:       "DELETE",
	Returning:    "RETURNING",
}

func (k Keyword) String() string {
	if k < 0 || int(k) >= len(keywordNames) {
		return keywordNames[Unrecognized]
	}
	return keywordNames[k]
}

// Layout returns how the body of a clause led by k is rendered.
func (k Keyword) Layout() Layout {
	switch k {
	case With, Select, From, GroupBy, Window, OrderBy, Values, Update, Set, Returning:
		return ListBody
	case On, Where, Having:
		return PredicateBody
	case Join, Using, Limit, Offset, Union, Insert, Delete, Unrecognized:
		return PlainBody
	}
	return PlainBody
}

// StartsStatement reports whether a parenthesized group led by k is a
// subquery rather than an expression.
func (k Keyword) StartsStatement() bool {
	return k == Select || k == With || k == Values
}

// modifiers returns the keywords that stay on the clause keyword's line.
func (k Keyword) modifiers() []string {
	switch k {
	case Select:
		return []string{"DISTINCT", "ALL"}
	case With:
		return []string{"RECURSIVE"}
	default:
		return nil
	}
}

// Lookup maps a keyword token to its clause keyword. Anything that does not
// start a clause, including non-keyword tokens, maps to Unrecognized.
func Lookup(tok lexer.Token) Keyword {
	if tok.Kind != lexer.Keyword {
		return Unrecognized
	}

	word := tok.Upper()
	switch word {
	case "WITH":
		return With
	case "SELECT":
		return Select
	case "FROM":
		return From
	case "ON":
		return On
	case "USING":
		return Using
	case "WHERE":
		return Where
	case "GROUP BY":
		return GroupBy
	case "HAVING":
		return Having
	case "WINDOW":
		return Window
	case "ORDER BY":
		return OrderBy
	case "LIMIT":
		return Limit
	case "OFFSET":
		return Offset
	case "UNION", "UNION ALL", "UNION DISTINCT", "INTERSECT", "INTERSECT ALL", "EXCEPT", "EXCEPT ALL":
		return Union
	case "INSERT", "INSERT INTO":
		return Insert
	case "VALUES":
		return Values
	case "UPDATE":
		return Update
	case "SET":
		return Set
	case "DELETE", "DELETE FROM":
		return Delete
	case "RETURNING":
		return Returning
	}

	if word == "JOIN" || strings.HasSuffix(word, " JOIN") {
		return Join
	}
	return Unrecognized
}

// continues lists, per clause keyword, the preceding words that make the
// keyword part of an expression instead of a new clause
// (IS DISTINCT FROM, SELECT DISTINCT ON, FOR UPDATE, DEFAULT VALUES, ...).
var continues = map[Keyword][]string{
	From:   {"DISTINCT"},
	On:     {"DISTINCT"},
	Update: {"FOR", "KEY", "DO"},
	Values: {"DEFAULT"},
}

// continuedBy lists, per clause keyword, the following words that make the
// keyword part of an expression (ON CONFLICT).
var continuedBy = map[Keyword][]string{
	On: {"CONFLICT"},
}

// isBoundary reports whether tok starts a new clause given the previous and
// next significant tokens, either of which may be nil. first is true while no
// clause has been opened yet.
func isBoundary(prev *lexer.Token, tok lexer.Token, next *lexer.Token, first bool) bool {
	kw := Lookup(tok)
	if kw == Unrecognized {
		return false
	}

	// WITH only leads a statement; elsewhere it is part of an expression
	// such as "timestamp with time zone".
	if kw == With && !first {
		return false
	}

	if prev != nil && slices.Contains(continues[kw], strings.ToUpper(prev.Text)) {
		return false
	}
	if next != nil && slices.Contains(continuedBy[kw], strings.ToUpper(next.Text)) {
		return false
	}
	return true
}
