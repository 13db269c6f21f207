package clause

import (
	"fmt"

	"github.com/james-woods/format-sql/pkg/lexer"
	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedClause is returned when a statement does not start with a
	// recognized clause keyword. Such statements are passed through verbatim.
	ErrUnsupportedClause = errors.New("unsupported clause")

	// ErrUnbalancedParens is returned when parentheses do not pair up.
	ErrUnbalancedParens = errors.New("unbalanced parentheses")
)

// ParseString tokenizes sql and segments it into clauses.
func ParseString(sql string) (*Statement, error) {
	tokens, err := lexer.Tokenize(sql)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

// Parse groups tokens into a statement. Whitespace tokens are dropped and
// remembered on the following leaf; parentheses are paired first so clause
// boundaries are only detected at the top level.
func Parse(tokens []lexer.Token) (*Statement, error) {
	nodes, rest, err := group(toLeaves(tokens), 0)
	if err != nil {
		return nil, err
	}

	if len(rest) > 0 {
		return nil, errors.Wrapf(ErrUnbalancedParens, "unexpected %q at %s", rest[0].Token.Text, position(rest[0]))
	}

	return segment(nodes, 0)
}

func toLeaves(tokens []lexer.Token) []*Leaf {
	leaves := make([]*Leaf, 0, len(tokens))
	space := false
	for _, tok := range tokens {
		if tok.Kind == lexer.Whitespace {
			space = true
			continue
		}

		leaves = append(leaves, &Leaf{Token: tok, Space: space})
		space = false
	}
	return leaves
}

// group pairs parentheses. It returns the nodes read and the remaining leaves,
// which start with the ")" that ended the current level (if any).
func group(leaves []*Leaf, depth int) ([]Node, []*Leaf, error) {
	var nodes []Node
	for len(leaves) > 0 {
		leaf := leaves[0]
		switch {
		case leaf.Token.IsPunct(")"):
			return nodes, leaves, nil

		case leaf.Token.IsPunct("("):
			subquery := opensStatement(leaves[1:])
			innerDepth := depth
			if subquery {
				innerDepth++
			}

			body, rest, err := group(leaves[1:], innerDepth)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 {
				return nil, nil, errors.Wrapf(ErrUnbalancedParens, "unclosed %q at %s", leaf.Token.Text, position(leaf))
			}

			n, err := paren(leaf, rest[0], body, subquery, innerDepth)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, n)
			leaves = rest[1:]

		default:
			nodes = append(nodes, leaf)
			leaves = leaves[1:]
		}
	}
	return nodes, nil, nil
}

// opensStatement reports whether the leaves following a "(" begin with a
// statement keyword, skipping comments.
func opensStatement(leaves []*Leaf) bool {
	for _, leaf := range leaves {
		if leaf.Token.Kind == lexer.Comment {
			continue
		}
		return Lookup(leaf.Token).StartsStatement()
	}
	return false
}

func paren(open, end *Leaf, body []Node, subquery bool, depth int) (Node, error) {
	if !subquery {
		return &Group{Open: open, Close: end, Body: body}, nil
	}

	stmt, err := segment(body, depth)
	if err != nil {
		return nil, errors.Wrapf(err, "subquery at %s", position(open))
	}
	return &Subquery{Open: open, Close: end, Statement: stmt}, nil
}

// segment splits top-level nodes into clauses.
func segment(nodes []Node, depth int) (*Statement, error) {
	stmt := &Statement{Depth: depth}

	var (
		current *Clause
		prev    *lexer.Token
	)

	for i, n := range nodes {
		leaf, isLeaf := n.(*Leaf)

		if isLeaf && current == nil && leaf.Token.Kind == lexer.Comment {
			stmt.Leading = append(stmt.Leading, leaf)
			continue
		}

		if isLeaf && leaf.Token.IsPunct(";") {
			if current == nil {
				break
			}
			if i != len(nodes)-1 {
				return nil, errors.Wrapf(ErrUnsupportedClause, "text after %q at %s", ";", position(leaf))
			}
			stmt.Terminator = leaf
			break
		}

		if isLeaf && isBoundary(prev, leaf.Token, nextToken(nodes[i+1:]), current == nil) {
			current = &Clause{Keyword: Lookup(leaf.Token), Token: leaf, Depth: depth}
			stmt.Clauses = append(stmt.Clauses, current)
			prev = &leaf.Token
			continue
		}

		if current == nil {
			return nil, errors.Wrapf(ErrUnsupportedClause, "statement starts with %q", describe(n))
		}

		if isLeaf && len(current.Body) == 0 && isModifier(current.Keyword, leaf.Token) {
			current.Modifiers = append(current.Modifiers, leaf)
			prev = &leaf.Token
			continue
		}

		current.Body = append(current.Body, n)
		switch n := n.(type) {
		case *Leaf:
			if n.Token.Kind != lexer.Comment {
				prev = &n.Token
			}
		case *Group:
			prev = &n.Close.Token
		case *Subquery:
			prev = &n.Close.Token
		}
	}

	if current == nil {
		return nil, errors.Wrap(ErrUnsupportedClause, "no clause found")
	}
	return stmt, nil
}

// nextToken returns the first token of nodes that is not a comment.
func nextToken(nodes []Node) *lexer.Token {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Leaf:
			if n.Token.Kind != lexer.Comment {
				return &n.Token
			}
		case *Group:
			return &n.Open.Token
		case *Subquery:
			return &n.Open.Token
		}
	}
	return nil
}

func isModifier(kw Keyword, tok lexer.Token) bool {
	for _, m := range kw.modifiers() {
		if tok.Is(m) {
			return true
		}
	}
	return false
}

func describe(n Node) string {
	switch n := n.(type) {
	case *Leaf:
		return n.Token.Text
	case *Group:
		return n.Open.Token.Text
	case *Subquery:
		return n.Open.Token.Text
	default:
		return ""
	}
}

func position(leaf *Leaf) string {
	return fmt.Sprintf("line %d, column %d", leaf.Token.Pos.Line, leaf.Token.Pos.Column)
}
