package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"game": { "seed": 99, "shipsPerPlayer": 3, "loadout": ["laser", "missile"] },
		"server": { "addr": "127.0.0.1:9000" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", GetString("logLevel"))
	g := Game()
	assert.Equal(t, int64(99), g.Seed)
	assert.Equal(t, 3, g.ShipsPerPlayer)
	assert.Equal(t, []string{"laser", "missile"}, g.Loadout)
	assert.Equal(t, "127.0.0.1:9000", Server().Addr)
	assert.Equal(t, 64, Server().MaxRooms)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, false, viper.GetBool("graylog.enabled"))
	assert.Equal(t, "localhost:12201", viper.GetString("graylog.address"))
	assert.Equal(t, "./assets/levels", viper.GetString("levels.dir"))
	assert.Equal(t, 0, viper.GetInt("levels.index"))
	assert.Equal(t, 1, viper.GetInt("game.shipsPerPlayer"))
	assert.Equal(t, []string{"laser"}, viper.GetStringSlice("game.loadout"))
	assert.Equal(t, 900, viper.GetInt("window.height"))
	assert.Equal(t, ":8080", viper.GetString("server.addr"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load("/nonexistent/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")

	var notFound viper.ConfigFileNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "info", Log().Level, "defaults survive a missing file")
	assert.Equal(t, 900, Window().Height)
}

func TestGetters(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("testKey", "testValue")
	viper.Set("testInt", 42)
	viper.Set("testBool", true)

	assert.Equal(t, "testValue", GetString("testKey"))
	assert.Equal(t, 42, GetInt("testInt"))
	assert.Equal(t, true, GetBool("testBool"))
}

func TestLog_Override(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "logLevel": "warn", "graylog": { "enabled": true, "address": "gl:12201" } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	lc := Log()
	assert.Equal(t, "warn", lc.Level)
	assert.True(t, lc.GraylogEnabled)
	assert.Equal(t, "gl:12201", lc.GraylogAddress)
}
