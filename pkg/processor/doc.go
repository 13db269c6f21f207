// Package processor runs the formatting pipeline over files.
//
// Paths given explicitly are always processed. Directories are walked only
// when Recursive is set, keeping the files whose extension is one of Types.
// A file with the .sql extension is formatted as plain SQL; any other file is
// scanned for SQL embedded in string literals.
//
// Every processed file is read once and then either written back once or, in
// dry-run mode, printed to Out. Filesystem errors are logged and collected;
// they never stop the remaining files from being processed.
package processor
