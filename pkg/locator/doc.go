// Package locator finds SQL statements in host texts.
//
// Two kinds of host text are supported. A SQL file is split into statements on
// top-level semicolons. Any other source file is scanned for string literals
// whose content starts with a statement keyword (SELECT, INSERT, UPDATE,
// DELETE, WITH, CREATE, ...); the literal's content is the statement.
//
// Every Match carries the original text, its byte range, the quote that
// opened the literal and the indentation of the embedding line, along with the
// formatted text. Statements that cannot be formatted are yielded with
// Formatted equal to Original so callers leave them untouched.
//
// Both searches are lazy sequences that restart from the beginning of the text
// each time they are ranged over.
package locator
