package lexer

import (
	"strings"
)

// Kind classifies a token.
type Kind int

const (
	Whitespace Kind = iota
	Comment
	Keyword
	Identifier
	String
	Number
	Operator
	Punctuation
)

var kindNames = map[Kind]string{
	Whitespace:  "Whitespace",
	Comment:     "Comment",
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	String:      "String",
	Number:      "Number",
	Operator:    "Operator",
	Punctuation: "Punctuation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type (
	// Position locates a token in the lexed text. Offset is in bytes, Line and
	// Column are 1-based.
	Position struct {
		Offset int
		Line   int
		Column int
	}

	// Token is a single lexical unit. Text is the exact source text, so a
	// multi-word keyword keeps the whitespace between its words.
	Token struct {
		Kind Kind
		Text string
		Pos  Position
	}
)

// Upper returns the canonical form of a keyword: upper case with every run of
// whitespace collapsed to a single space. Other tokens are upper-cased as is.
func (t Token) Upper() string {
	if t.Kind == Keyword {
		return strings.ToUpper(strings.Join(strings.Fields(t.Text), " "))
	}
	return strings.ToUpper(t.Text)
}

// Display returns the text used when rendering the token. Keywords keep their
// original case but have inner whitespace collapsed; everything else is
// returned verbatim.
func (t Token) Display() string {
	if t.Kind == Keyword {
		return strings.Join(strings.Fields(t.Text), " ")
	}
	return t.Text
}

// Is reports whether t is a keyword matching any of the given (upper case) words.
func (t Token) Is(words ...string) bool {
	if t.Kind != Keyword {
		return false
	}

	upper := t.Upper()
	for _, w := range words {
		if upper == w {
			return true
		}
	}
	return false
}

// IsPunct reports whether t is the given punctuation character.
func (t Token) IsPunct(p string) bool {
	return t.Kind == Punctuation && t.Text == p
}

// IsLineComment reports whether t is a -- comment, which must end its line.
func (t Token) IsLineComment() bool {
	return t.Kind == Comment && strings.HasPrefix(t.Text, "--")
}

// Text concatenates the source text of tokens.
func Text(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
