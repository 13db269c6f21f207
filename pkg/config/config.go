package config

import (
	"io"
	"os"

	"github.com/james-woods/format-sql/pkg/consts"
	"github.com/james-woods/format-sql/pkg/format"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the optional project configuration read from
// .format-sql.yaml. Command line flags take precedence over every field.
type Config struct {
	// IndentSize is the number of spaces in one indentation unit
	IndentSize int `yaml:"indent_size,omitempty"`

	// UppercaseKeywords upper-cases SQL keywords instead of keeping their case
	UppercaseKeywords bool `yaml:"uppercase_keywords,omitempty"`

	// Types lists the file extensions (without the dot) visited when walking
	// directories
	Types []string `yaml:"types,omitempty"`

	// Recursive walks directories given on the command line
	Recursive bool `yaml:"recursive,omitempty"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level,omitempty"`

	// LogFormat is either text or json
	LogFormat string `yaml:"log_format,omitempty"`
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing fields are
// set to their defaults.
//
// Example:
//
//	yamlData := `
//	indent_size: 2
//	types: [sql, py]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Indent: %d\n", cfg.IndentSize)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Default returns a configuration holding only default values.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// FormatterOptions returns the formatting options described by the config.
// A nil config yields format.Defaults.
func (c *Config) FormatterOptions() format.FormatterOptions {
	if c == nil {
		return format.Defaults
	}

	return format.FormatterOptions{
		IndentSize:        c.IndentSize,
		UppercaseKeywords: c.UppercaseKeywords,
	}
}

// GetFormatter builds a formatter from the config's options.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.FormatterOptions())
}

func (c *Config) applyDefaults() {
	if c.IndentSize <= 0 {
		c.IndentSize = consts.DefaultIndentSize
	}
	if c.LogLevel == "" {
		c.LogLevel = consts.DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = consts.DefaultLogFormat
	}
}
