package locator

import (
	"iter"
	"strings"

	"github.com/james-woods/format-sql/pkg/clause"
	"github.com/james-woods/format-sql/pkg/lexer"
	"github.com/pkg/errors"
)

// state is a step of the embedded statement scanner.
type state int

const (
	scanning state = iota
	matchingQuote
	inLiteral
	lookingForSQLStart
	capturingStatement
	closed
)

// statementStarts are the first words that make a literal a SQL statement.
var statementStarts = map[string]bool{
	"SELECT":   true,
	"INSERT":   true,
	"UPDATE":   true,
	"DELETE":   true,
	"WITH":     true,
	"CREATE":   true,
	"ALTER":    true,
	"DROP":     true,
	"REPLACE":  true,
	"MERGE":    true,
	"TRUNCATE": true,
	"VALUES":   true,
}

// literal tracks the string literal being examined.
type literal struct {
	quote      Quote
	quoteStart int
	start      int
	end        int
}

// EmbeddedStatements returns the SQL statements held in the string literals of
// a host language source text, in source order.
//
// Literals are delimited by """, ''', " or ', and must be closed by the
// delimiter that opened them. Backslash escapes the next character. A one-line
// literal that reaches the end of its line is not a literal and scanning
// resumes after its opening quote. A triple-quoted literal that is never closed
// ends the sequence; Err then reports ErrMismatchedQuote.
//
// Only literals whose content, once leading whitespace is skipped, starts with
// a statement keyword are yielded.
func (l *Locator) EmbeddedStatements(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		l.err = nil

		var (
			st        = scanning
			pos       int
			lineStart int
			lit       literal
		)

		for {
			switch st {
			case scanning:
				if pos >= len(text) {
					return
				}

				switch text[pos] {
				case '\n':
					lineStart = pos + 1
				case '"', '\'':
					st = matchingQuote
					continue
				}
				pos++

			case matchingQuote:
				lit = literal{quote: quoteAt(text, pos), quoteStart: pos}
				lit.start = pos + len(lit.quote)
				st = inLiteral

			case inLiteral:
				end, ok := closing(text, lit.start, lit.quote)
				if ok {
					lit.end = end
					st = lookingForSQLStart
					continue
				}

				if lit.quote.Triple() {
					l.err = errors.Wrapf(ErrMismatchedQuote, "%s opened at line %d", lit.quote, lineOf(text, lit.quoteStart))
					return
				}
				pos = lit.quoteStart + 1
				st = scanning

			case lookingForSQLStart:
				st = closed
				if startsStatement(text[lit.start:lit.end]) {
					st = capturingStatement
				}

			case capturingStatement:
				if !yield(l.embedded(text, lit, lineStart)) {
					return
				}
				st = closed

			case closed:
				pos = lit.end + len(lit.quote)
				if nl := strings.LastIndexByte(text[lit.quoteStart:pos], '\n'); nl >= 0 {
					lineStart = lit.quoteStart + nl + 1
				}
				st = scanning
			}
		}
	}
}

func (l *Locator) embedded(text string, lit literal, lineStart int) Match {
	lineIndent := indentation(text[lineStart:])
	m := Match{
		Original:   text[lit.start:lit.end],
		Indent:     lineIndent + l.formatter.Unit(),
		LineIndent: lineIndent,
		Quote:      lit.quote,
		Start:      lit.start,
		End:        lit.end,
	}

	var (
		formatted string
		err       error
	)
	if lit.quote.Triple() {
		formatted, err = l.block(m.Original, m.Indent)
	} else {
		formatted, err = l.inline(m.Original)
	}

	m.Formatted = m.Original
	if err != nil {
		l.logger.Debug("Passing embedded statement through", "line", lineOf(text, lit.quoteStart), "reason", err.Error())
		return m
	}
	m.Formatted = formatted
	return m
}

// block formats every statement of a triple-quoted literal at the given
// indentation and joins them with newlines. If any of them cannot be formatted
// the literal is left alone.
func (l *Locator) block(content, indent string) (string, error) {
	var out []string
	for s := range statements(content) {
		if s.opaque {
			return "", lexer.ErrUnterminatedLiteral
		}

		stmt, err := clause.ParseString(content[s.start:s.end])
		if err != nil {
			return "", err
		}
		out = append(out, l.formatter.Indented(stmt, indent))
	}
	return strings.Join(out, "\n"), nil
}

var (
	errContinuation = errors.New("line continuation in one-line literal")
	errLineComment  = errors.New("line comment would swallow the rest of the literal")
)

// inline renders the content of a one-line literal on a single line.
func (l *Locator) inline(content string) (string, error) {
	if strings.ContainsAny(content, "\r\n") {
		return "", errContinuation
	}

	stmt, err := clause.ParseString(content)
	if err != nil {
		return "", err
	}

	formatted, ok := l.formatter.Inline(stmt)
	if !ok {
		return "", errLineComment
	}
	return formatted, nil
}

// quoteAt returns the quote starting at text[pos], preferring a triple quote.
func quoteAt(text string, pos int) Quote {
	q := text[pos : pos+1]
	if strings.HasPrefix(text[pos:], strings.Repeat(q, 3)) {
		return Quote(strings.Repeat(q, 3))
	}
	return Quote(q)
}

// closing finds the offset of the delimiter closing a literal whose content
// starts at from.
func closing(text string, from int, quote Quote) (int, bool) {
	for i := from; i < len(text); {
		switch {
		case text[i] == '\\':
			i += 2
		case strings.HasPrefix(text[i:], string(quote)):
			return i, true
		case text[i] == '\n' && !quote.Triple():
			return 0, false
		default:
			i++
		}
	}
	return 0, false
}

// startsStatement reports whether content, after leading whitespace, starts
// with a statement keyword.
func startsStatement(content string) bool {
	for tok, err := range lexer.Tokens(content) {
		if err != nil {
			return false
		}
		if tok.Kind == lexer.Whitespace {
			continue
		}
		if tok.Kind != lexer.Keyword {
			return false
		}
		return statementStarts[strings.Fields(tok.Upper())[0]]
	}
	return false
}

// indentation returns the leading spaces and tabs of line.
func indentation(line string) string {
	end := strings.IndexFunc(line, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if end < 0 {
		return line
	}
	return line[:end]
}

func lineOf(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}
