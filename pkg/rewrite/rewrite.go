package rewrite

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/james-woods/format-sql/pkg/format"
	"github.com/james-woods/format-sql/pkg/locator"
)

// Rewriter formats the SQL statements of host texts.
type Rewriter struct {
	formatter *format.Formatter
	logger    *slog.Logger
}

// New creates a Rewriter that renders statements with f. A nil logger means
// slog.Default().
func New(f *format.Formatter, logger *slog.Logger) *Rewriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rewriter{formatter: f, logger: logger}
}

// SQLText formats every statement of a SQL file. The text is returned
// unchanged when no statement is found.
func (r *Rewriter) SQLText(text string) string {
	return Apply(text, r.locator().SQLStatements(text))
}

// EmbeddedSQL formats the SQL held in the string literals of a host language
// source text. The text is returned unchanged when no statement is found.
func (r *Rewriter) EmbeddedSQL(text string) string {
	loc := r.locator()
	out := Apply(text, loc.EmbeddedStatements(text))
	if err := loc.Err(); err != nil {
		r.logger.Debug("Embedded SQL search ended early", "error", err.Error())
	}
	return out
}

func (r *Rewriter) locator() *locator.Locator {
	return locator.New(r.formatter, locator.WithLogger(r.logger))
}

// Apply replaces the byte range of each match with its replacement text, in
// source order. Matches overlapping an earlier one are ignored.
//
// A changed statement found in a triple-quoted literal is placed on its own
// lines, already indented by the locator, and the closing quote is moved to a
// new line at the embedding line's indentation. All other matches are
// substituted as is.
func Apply(text string, matches iter.Seq[locator.Match]) string {
	var (
		sb    strings.Builder
		prev  int
		found bool
	)

	for m := range matches {
		if m.Start < prev {
			continue
		}

		found = true
		sb.WriteString(text[prev:m.Start])
		sb.WriteString(replacement(m))
		prev = m.End
	}

	if !found {
		return text
	}

	sb.WriteString(text[prev:])
	return sb.String()
}

func replacement(m locator.Match) string {
	if m.Unchanged() || !m.Quote.Triple() {
		return m.Formatted
	}

	return "\n" + m.Formatted + "\n" + m.LineIndent
}
