// Package cmd provides the format-sql command line interface.
//
// The command formats SQL found in the files and directories given as
// arguments. Files ending in .sql are formatted as plain SQL text; every
// other file is searched for SQL statements embedded in string literals,
// which are reformatted in place.
//
// # Flags
//
//   - --types, -t: file extensions visited when walking directories (repeatable)
//   - --recursive, -r: walk directories given as arguments
//   - --dry-run: print the result instead of writing files
//   - --indent: spaces per indentation level
//   - --uppercase: upper-case SQL keywords
//   - --config, -c: configuration file (also FORMAT_SQL_CONFIG)
//   - --log-level, --log-format: logging output on stderr
//
// Flags may appear before or after the paths. A flag given on the command
// line overrides the matching field of the configuration file.
//
// # Example Usage
//
//	format-sql queries.sql                      # format a single file
//	format-sql -r --types py src/              # embedded SQL in python sources
//	format-sql --dry-run --uppercase report.sql # preview with upper-case keywords
package cmd
