package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/james-woods/format-sql/pkg/config"
	"github.com/james-woods/format-sql/pkg/consts"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func populate(t *testing.T) (*Config, error) {
	t.Helper()

	var cfg *Config
	app := fx.New(fx.NopLogger, Module, fx.Populate(&cfg))
	return cfg, app.Err()
}

func TestModule(t *testing.T) {
	t.Run("file named by the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))
		t.Setenv(consts.ConfigEnv, path)

		cfg, err := populate(t)
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("file in the working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, consts.ConfigFile), []byte("indent_size: 2\n"), consts.ModeFile))
		t.Setenv(consts.ConfigEnv, "")
		t.Chdir(dir)

		cfg, err := populate(t)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.IndentSize)
	})

	t.Run("no config file", func(t *testing.T) {
		t.Setenv(consts.ConfigEnv, "")
		t.Chdir(t.TempDir())

		cfg, err := populate(t)
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("malformed config fails the graph", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, consts.ConfigFile), []byte("indent_size: [\n"), consts.ModeFile))
		t.Setenv(consts.ConfigEnv, "")
		t.Chdir(dir)

		_, err := populate(t)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to unmarshal config")
	})

	t.Run("missing file named by the environment", func(t *testing.T) {
		t.Setenv(consts.ConfigEnv, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := populate(t)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to open file")
	})
}
