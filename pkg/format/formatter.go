package format

import (
	"strings"

	"github.com/james-woods/format-sql/pkg/clause"
	"github.com/james-woods/format-sql/pkg/consts"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// UppercaseKeywords upper-cases keywords. When false the source case is kept.
		UppercaseKeywords bool
	}

	// Formatter renders clause trees with configurable options
	Formatter struct {
		options FormatterOptions
		unit    string
	}
)

// Defaults are the options used when none are configured.
var Defaults = FormatterOptions{
	IndentSize:        consts.DefaultIndentSize,
	UppercaseKeywords: false,
}

// New creates a new Formatter with the specified options. A non-positive
// IndentSize falls back to the default.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}

	return &Formatter{
		options: options,
		unit:    strings.Repeat(" ", options.IndentSize),
	}
}

// Unit returns one indentation unit.
func (f *Formatter) Unit() string {
	return f.unit
}

// Statement renders stmt in block layout: one clause keyword per line with the
// body indented one unit deeper. The statement's Depth is the base indent.
func (f *Formatter) Statement(stmt *clause.Statement) string {
	return f.Indented(stmt, "")
}

// Indented renders stmt like Statement and starts every line it breaks with
// prefix. Line breaks inside string literals and block comments are kept as
// they are.
func (f *Formatter) Indented(stmt *clause.Statement, prefix string) string {
	if stmt == nil {
		return ""
	}

	p := f.printer(false)
	p.prefix = prefix
	p.statement(stmt, stmt.Depth)
	return p.sb.String()
}

// Inline renders stmt on a single line with canonical spacing. It reports
// false when a line comment would swallow the tokens following it.
func (f *Formatter) Inline(stmt *clause.Statement) (string, bool) {
	if stmt == nil {
		return "", true
	}

	p := f.printer(true)
	p.statement(stmt, 0)
	return p.sb.String(), !p.broken
}

// SQL parses and renders a single statement. When the text cannot be
// formatted it is returned trimmed, along with the reason.
func (f *Formatter) SQL(sql string) (string, error) {
	stmt, err := clause.ParseString(sql)
	if err != nil {
		return strings.TrimSpace(sql), err
	}

	return f.Statement(stmt), nil
}

func (f *Formatter) printer(inline bool) *printer {
	return &printer{
		unit:   f.unit,
		upper:  f.options.UppercaseKeywords,
		inline: inline,
	}
}
