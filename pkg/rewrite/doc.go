// Package rewrite substitutes formatted SQL statements into host texts.
//
// The Rewriter ties the pipeline together: it locates statements, formats
// them and builds the new text. Only the byte ranges of located statements
// change; everything else is copied through as is.
//
// Usage:
//
//	r := rewrite.New(format.New(format.Defaults), nil)
//
//	out := r.SQLText("select a from t;")          // plain SQL file content
//	out = r.EmbeddedSQL(`q = """select a from t"""`) // host language source
package rewrite
