package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const FileName = "armada.cfg.json"

// GameConfig holds match setup values
type GameConfig struct {
	Seed           int64    `json:"seed" mapstructure:"seed"`
	ShipsPerPlayer int      `json:"shipsPerPlayer" mapstructure:"shipsPerPlayer"`
	Loadout        []string `json:"loadout" mapstructure:"loadout"`
	LevelsDir      string   `json:"levelsDir" mapstructure:"levelsDir"`
	LevelIndex     int      `json:"levelIndex" mapstructure:"levelIndex"`
}

// WindowConfig holds frontend window settings
type WindowConfig struct {
	Height int `json:"height" mapstructure:"height"`
}

// ServerConfig holds match server settings
type ServerConfig struct {
	Addr     string `json:"addr" mapstructure:"addr"`
	MaxRooms int    `json:"maxRooms" mapstructure:"maxRooms"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level          string `json:"logLevel" mapstructure:"logLevel"`
	GraylogEnabled bool   `json:"graylogEnabled" mapstructure:"graylogEnabled"`
	GraylogAddress string `json:"graylogAddress" mapstructure:"graylogAddress"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("graylog.enabled", false)
	viper.SetDefault("graylog.address", "localhost:12201")

	viper.SetDefault("levels.dir", "./assets/levels")
	viper.SetDefault("levels.index", 0)

	viper.SetDefault("game.seed", 0)
	viper.SetDefault("game.shipsPerPlayer", 1)
	viper.SetDefault("game.loadout", []string{"laser"})

	viper.SetDefault("window.height", 900)

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.maxRooms", 64)
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file. Defaults stay in
// effect when the file cannot be read.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Game returns the match setup section
func Game() GameConfig {
	return GameConfig{
		Seed:           viper.GetInt64("game.seed"),
		ShipsPerPlayer: viper.GetInt("game.shipsPerPlayer"),
		Loadout:        viper.GetStringSlice("game.loadout"),
		LevelsDir:      viper.GetString("levels.dir"),
		LevelIndex:     viper.GetInt("levels.index"),
	}
}

func Window() WindowConfig {
	return WindowConfig{Height: viper.GetInt("window.height")}
}

func Server() ServerConfig {
	return ServerConfig{
		Addr:     viper.GetString("server.addr"),
		MaxRooms: viper.GetInt("server.maxRooms"),
	}
}

func Log() LogConfig {
	return LogConfig{
		Level:          viper.GetString("logLevel"),
		GraylogEnabled: viper.GetBool("graylog.enabled"),
		GraylogAddress: viper.GetString("graylog.address"),
	}
}
