package lexer

import (
	"iter"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// ErrUnterminatedLiteral is returned when a string literal, quoted identifier
// or block comment has no closing delimiter.
var ErrUnterminatedLiteral = errors.New("unterminated literal")

var (
	// sqlLexer defines the rules for SQL text. Rules are tried in order and
	// the catch-all Other rule guarantees every byte is consumed.
	sqlLexer = plexer.MustSimple([]plexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: "LineComment", Pattern: `--[^\r\n]*`},
		{Name: "BlockComment", Pattern: `/\*(?:[^*]|\*+[^*/])*\*+/`},
		{Name: "String", Pattern: `'(?:[^'\\]|\\[\s\S]|'')*'|"(?:[^"\\]|\\[\s\S]|"")*"`},
		{Name: "QuotedIdent", Pattern: "`(?:[^`]|``)*`"},
		{Name: "Unterminated", Pattern: "(?:/\\*|['\"`])[\\s\\S]*"},
		{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Param", Pattern: `%\([^()\s]*\)[sd]|%[sd]|\?|\$\d+|[:@][\p{L}_][\p{L}\p{N}_]*`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
		{Name: "Operator", Pattern: `::|<>|!=|<=|>=|\|\||->>|->|=>|[-+*/%=<>!|&^~:.@#]`},
		{Name: "Punct", Pattern: `[(),;\[\]{}]`},
		{Name: "Other", Pattern: `[\s\S]`},
	})

	ruleKinds = map[string]Kind{
		"Whitespace":   Whitespace,
		"LineComment":  Comment,
		"BlockComment": Comment,
		"String":       String,
		"QuotedIdent":  Identifier,
		"Number":       Number,
		"Param":        Identifier,
		"Ident":        Identifier,
		"Operator":     Operator,
		"Punct":        Punctuation,
		"Other":        Operator,
	}

	tokenKinds   map[plexer.TokenType]Kind
	unterminated plexer.TokenType
)

func init() {
	symbols := sqlLexer.Symbols()
	tokenKinds = make(map[plexer.TokenType]Kind, len(ruleKinds))
	for name, kind := range ruleKinds {
		tokenKinds[symbols[name]] = kind
	}
	unterminated = symbols["Unterminated"]
}

// Tokens returns a lazy sequence over the tokens of sql. Ranging over the
// sequence again lexes the text again from the start. The sequence stops
// after yielding the first error.
func Tokens(sql string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		s, err := newScanner(sql)
		if err != nil {
			yield(Token{}, err)
			return
		}

		for {
			tok, ok, err := s.next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !ok || !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize collects all tokens of sql.
func Tokenize(sql string) ([]Token, error) {
	var tokens []Token
	for tok, err := range Tokens(sql) {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// scanner wraps the participle lexer with a lookahead buffer used to merge
// multi-word keywords.
type scanner struct {
	lex plexer.Lexer
	buf []Token
	eof bool
}

func newScanner(sql string) (*scanner, error) {
	lex, err := sqlLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex SQL")
	}
	return &scanner{lex: lex}, nil
}

// fill reads from the underlying lexer until at least n tokens are buffered
// or the input is exhausted.
func (s *scanner) fill(n int) error {
	for len(s.buf) < n && !s.eof {
		raw, err := s.lex.Next()
		if err != nil {
			return errors.Wrap(err, "failed to lex SQL")
		}
		if raw.EOF() {
			s.eof = true
			break
		}

		pos := Position{Offset: raw.Pos.Offset, Line: raw.Pos.Line, Column: raw.Pos.Column}
		if raw.Type == unterminated {
			return errors.Wrapf(ErrUnterminatedLiteral, "line %d, column %d", pos.Line, pos.Column)
		}

		kind := tokenKinds[raw.Type]
		if kind == Identifier && IsKeyword(raw.Value) && isBareWord(raw.Value) {
			kind = Keyword
		}
		s.buf = append(s.buf, Token{Kind: kind, Text: raw.Value, Pos: pos})
	}
	return nil
}

// next pops the next token, merging a keyword with the keywords that follow
// it when together they form a known phrase. The longest phrase wins.
func (s *scanner) next() (Token, bool, error) {
	if err := s.fill(1); err != nil {
		return Token{}, false, err
	}
	if len(s.buf) == 0 {
		return Token{}, false, nil
	}

	tok := s.buf[0]
	node := phrases.child(strings.ToUpper(tok.Text))
	if tok.Kind != Keyword || node == nil {
		s.buf = s.buf[1:]
		return tok, true, nil
	}

	best := 0
	for i := 0; node != nil; i += 2 {
		if node.terminal {
			best = i
		}
		if err := s.fill(i + 3); err != nil {
			return Token{}, false, err
		}
		if len(s.buf) < i+3 {
			break
		}

		ws, word := s.buf[i+1], s.buf[i+2]
		if ws.Kind != Whitespace || word.Kind != Keyword {
			break
		}
		node = node.child(strings.ToUpper(word.Text))
	}

	for _, t := range s.buf[1 : best+1] {
		tok.Text += t.Text
	}
	s.buf = s.buf[best+1:]
	return tok, true, nil
}

// isBareWord excludes parameters (:name, @var) from keyword detection.
func isBareWord(s string) bool {
	return s != "" && s[0] != ':' && s[0] != '@' && s[0] != '%' && s[0] != '$'
}
