package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the optional project config looked up in the working directory
	ConfigFile = ".format-sql.yaml"

	// ConfigEnv names the environment variable overriding the config file path
	ConfigEnv = "FORMAT_SQL_CONFIG"

	// DefaultLogLevel is used when no log level is configured
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when no log format is configured
	DefaultLogFormat = "text"

	// DefaultIndentSize is the number of spaces in one indentation unit
	DefaultIndentSize = 4

	// SQLType is the file type handled as plain SQL; every other type is
	// scanned for SQL embedded in string literals.
	SQLType = "sql"
)

// DefaultTypes are the file types visited during recursive traversal when
// neither the command line nor the config file names any.
var DefaultTypes = []string{SQLType, "py"}
