package format

import (
	"strings"

	"github.com/james-woods/format-sql/pkg/clause"
	"github.com/james-woods/format-sql/pkg/lexer"
)

// printer accumulates rendered text. In block mode line() starts a new line
// at the given level; in inline mode it only asks for a separating space.
type printer struct {
	sb     strings.Builder
	prefix string
	unit   string
	upper  bool
	inline bool

	level       int
	atLineStart bool
	lineComment bool
	// lastLine is the source line the previous token ended on
	lastLine int

	// inline mode state
	sep    bool
	glue   bool
	broken bool
}

func (p *printer) line(level int) {
	if p.inline {
		p.sep = true
		return
	}

	if p.sb.Len() > 0 {
		p.sb.WriteByte('\n')
	}
	p.level = level
	p.atLineStart = true
	p.lineComment = false
}

// indent starts a line the printer broke. Only these lines get the prefix;
// line breaks inside a token are written as found.
func (p *printer) indent() {
	p.sb.WriteString(p.prefix)
	for range p.level {
		p.sb.WriteString(p.unit)
	}
}

// write appends s. space reports whether the source separated s from the
// previous token.
func (p *printer) write(s string, space bool) {
	if p.inline {
		if p.lineComment {
			p.broken = true
		}
		if p.sb.Len() > 0 && !p.glue && (space || p.sep) {
			p.sb.WriteByte(' ')
		}
	} else {
		switch {
		case p.atLineStart:
			p.indent()
		case p.lineComment:
			p.sb.WriteByte('\n')
			p.indent()
		case space:
			p.sb.WriteByte(' ')
		}
	}

	p.sb.WriteString(s)
	p.atLineStart = false
	p.lineComment = false
	p.sep = false
	p.glue = false
}

func (p *printer) token(leaf *clause.Leaf, space bool) {
	tok := leaf.Token

	// a comment that had a line of its own keeps it
	if !p.inline && !p.atLineStart && tok.Kind == lexer.Comment && p.lastLine > 0 && tok.Pos.Line > p.lastLine {
		p.line(p.level)
	}

	text := tok.Display()
	if p.upper && tok.Kind == lexer.Keyword {
		text = tok.Upper()
	}

	p.write(text, space)
	p.lineComment = tok.IsLineComment()
	p.lastLine = tok.Pos.Line + strings.Count(tok.Text, "\n")
}

func (p *printer) statement(stmt *clause.Statement, level int) {
	for _, c := range stmt.Leading {
		p.line(level)
		p.token(c, true)
	}

	for _, c := range stmt.Clauses {
		p.clause(c, level)
	}

	if stmt.Terminator != nil {
		p.token(stmt.Terminator, false)
	}
}

func (p *printer) clause(c *clause.Clause, level int) {
	p.line(level)
	p.token(c.Token, true)
	for _, m := range c.Modifiers {
		p.token(m, true)
	}

	if len(c.Body) == 0 {
		return
	}

	var parts [][]clause.Node
	switch c.Keyword.Layout() {
	case clause.ListBody:
		parts = splitList(c.Body)
	case clause.PredicateBody:
		parts = splitPredicate(c.Body)
	default:
		parts = [][]clause.Node{c.Body}
	}

	for _, part := range parts {
		p.line(level + 1)
		p.nodes(part, level+1)
	}
}

func (p *printer) nodes(nodes []clause.Node, level int) {
	for _, n := range nodes {
		p.node(n, level)
	}
}

func (p *printer) node(n clause.Node, level int) {
	switch n := n.(type) {
	case *clause.Leaf:
		p.token(n, n.Space)

	case *clause.Group:
		p.token(n.Open, n.Open.Space)
		p.nodes(n.Body, level)
		p.token(n.Close, n.Close.Space)

	case *clause.Subquery:
		p.token(n.Open, n.Open.Space)
		p.glue = true
		p.statement(n.Statement, level+1)
		if !p.inline {
			p.line(level)
		}
		p.token(n.Close, false)
	}
}

// splitList breaks a body into comma separated items. The comma stays with
// the item before it, as do comments that follow it on the same line.
func splitList(body []clause.Node) [][]clause.Node {
	var (
		items [][]clause.Node
		cur   []clause.Node
		comma *lexer.Token
	)

	for _, n := range body {
		leaf, isLeaf := n.(*clause.Leaf)
		if comma != nil {
			if isLeaf && leaf.Token.Kind == lexer.Comment && leaf.Token.Pos.Line == comma.Pos.Line {
				cur = append(cur, n)
				continue
			}
			items = append(items, cur)
			cur = nil
			comma = nil
		}

		cur = append(cur, n)
		if isLeaf && leaf.Token.IsPunct(",") {
			comma = &leaf.Token
		}
	}

	if len(cur) > 0 {
		items = append(items, cur)
	}
	return items
}

// splitPredicate breaks a body before each top-level AND / OR. The AND of a
// BETWEEN and anything inside CASE ... END stay on the current line.
func splitPredicate(body []clause.Node) [][]clause.Node {
	var (
		parts     [][]clause.Node
		cur       []clause.Node
		caseDepth int
		between   bool
	)

	for _, n := range body {
		if leaf, ok := n.(*clause.Leaf); ok {
			tok := leaf.Token
			switch {
			case tok.Is("CASE"):
				caseDepth++
			case tok.Is("END") && caseDepth > 0:
				caseDepth--
			case tok.Is("BETWEEN"):
				between = true
			case tok.Is("AND") && between:
				between = false
			case tok.Is("AND", "OR") && caseDepth == 0:
				if len(cur) > 0 {
					parts = append(parts, cur)
					cur = nil
				}
			}
		}
		cur = append(cur, n)
	}

	if len(cur) > 0 {
		parts = append(parts, cur)
	}
	return parts
}
