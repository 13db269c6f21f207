package locator

// Quote is the delimiter that opened the literal holding a statement.
type Quote string

const (
	// QuoteNone marks a statement taken from a plain SQL file.
	QuoteNone    Quote = ""
	TripleDouble Quote = `"""`
	TripleSingle Quote = `'''`
	Double       Quote = `"`
	Single       Quote = `'`
)

// Triple reports whether q is a triple quote, whose literals may span lines.
func (q Quote) Triple() bool {
	return q == TripleDouble || q == TripleSingle
}

// Match is a statement found in a host text.
type Match struct {
	// Original is the exact text of the statement. For embedded statements
	// this is the whole literal content between the quotes.
	Original string
	// Formatted is the rendered statement. It equals Original when the
	// statement is passed through. Statements of triple-quoted literals are
	// rendered with every line starting at Indent.
	Formatted string
	// Indent is the base indentation of a block formatted embedded
	// statement: the embedding line's indentation plus one unit.
	Indent string
	// LineIndent is the indentation of the line the literal was opened on.
	LineIndent string
	Quote      Quote
	// Start and End are the byte offsets of Original in the host text.
	Start int
	End   int
}

// Unchanged reports whether the statement is passed through as is.
func (m Match) Unchanged() bool {
	return m.Formatted == m.Original
}
