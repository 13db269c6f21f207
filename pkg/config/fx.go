package config

import (
	"os"

	"github.com/james-woods/format-sql/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the configuration named by FORMAT_SQL_CONFIG, or .format-sql.yaml
	// from the working directory. Returns nil when neither exists; the
	// --config flag can still name a file later on.
	func() (*Config, error) {
		if path := os.Getenv(consts.ConfigEnv); path != "" {
			return LoadConfigFile(path)
		}

		if _, err := os.Stat(consts.ConfigFile); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(consts.ConfigFile)
	},
))
