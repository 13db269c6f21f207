package locator

import (
	"iter"
	"log/slog"
	"strings"
	"unicode"

	"github.com/james-woods/format-sql/pkg/format"
	"github.com/james-woods/format-sql/pkg/lexer"
	"github.com/pkg/errors"
)

// ErrMismatchedQuote is reported when a triple-quoted literal is never closed
// with the delimiter that opened it.
var ErrMismatchedQuote = errors.New("mismatched quote")

type (
	// Locator finds SQL statements in host texts and formats them.
	Locator struct {
		formatter *format.Formatter
		logger    *slog.Logger
		err       error
	}

	// Option configures a Locator.
	Option func(*Locator)
)

// WithLogger sets the logger used to report statements that are passed
// through. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// New creates a Locator that renders statements with f.
func New(f *format.Formatter, opts ...Option) *Locator {
	l := &Locator{formatter: f, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Err returns the reason the last EmbeddedStatements sequence stopped early,
// or nil when it ran to the end of the text.
func (l *Locator) Err() error {
	return l.err
}

// SQLStatements returns the statements of a SQL file in source order. The
// text is split after each top-level semicolon; semicolons in literals and
// comments do not split. Each match spans the statement without surrounding
// whitespace and includes its semicolon. After an unterminated literal the
// rest of the text is a single match that is passed through.
func (l *Locator) SQLStatements(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for s := range statements(text) {
			m := Match{
				Original: text[s.start:s.end],
				Quote:    QuoteNone,
				Start:    s.start,
				End:      s.end,
			}

			m.Formatted = m.Original
			if s.opaque {
				l.logger.Debug("Passing statement through", "offset", s.start, "reason", lexer.ErrUnterminatedLiteral.Error())
			} else if formatted, err := l.formatter.SQL(m.Original); err != nil {
				l.logger.Debug("Passing statement through", "offset", s.start, "reason", err.Error())
			} else {
				m.Formatted = formatted
			}

			if !yield(m) {
				return
			}
		}
	}
}

// span is a statement's byte range. opaque marks text that could not be
// tokenized.
type span struct {
	start  int
	end    int
	opaque bool
}

func statements(text string) iter.Seq[span] {
	return func(yield func(span) bool) {
		start, end, next := -1, 0, 0
		for tok, err := range lexer.Tokens(text) {
			if err != nil {
				if start < 0 {
					start = next
				}
				rest := strings.TrimRightFunc(text[start:], unicode.IsSpace)
				yield(span{start: start, end: start + len(rest), opaque: true})
				return
			}

			next = tok.Pos.Offset + len(tok.Text)
			if tok.Kind == lexer.Whitespace {
				continue
			}

			if start < 0 {
				start = tok.Pos.Offset
			}
			end = next

			if tok.IsPunct(";") {
				if !yield(span{start: start, end: end}) {
					return
				}
				start = -1
			}
		}

		if start >= 0 {
			yield(span{start: start, end: end})
		}
	}
}
