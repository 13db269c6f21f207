// Package lexer splits SQL text into a lazy, restartable sequence of tokens.
//
// The lexer is built on the github.com/alecthomas/participle/v2 simple lexer
// and is deliberately forgiving: every byte of the input ends up in exactly
// one token, so concatenating the text of all tokens reproduces the input.
// This lets the formatter keep comments and literal contents untouched while
// rearranging the whitespace around them.
//
// Key features:
//   - Single and double quoted literals with doubled quotes and backslash escapes
//   - Line (--) and block (/* */) comments kept as Comment tokens
//   - Driver parameters such as %s, %(name)s, ?, :name and $1
//   - Multi-word keywords (GROUP BY, LEFT OUTER JOIN, UNION ALL, ...) merged
//     into a single Keyword token, matched case-insensitively
//
// Basic usage:
//
//	for tok, err := range lexer.Tokens("SELECT a FROM t GROUP BY a") {
//		if err != nil {
//			return err
//		}
//		fmt.Println(tok.Kind, tok.Text)
//	}
//
// An unterminated string literal or block comment yields ErrUnterminatedLiteral.
package lexer
