package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
	Players  PlayersConfig  `mapstructure:"players"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// GameConfig holds the rules for new games. Zero times mean unlimited.
type GameConfig struct {
	Size            int  `mapstructure:"size"`
	GameTimeMinutes int  `mapstructure:"game_time_minutes"`
	MoveTimeSeconds int  `mapstructure:"move_time_seconds"`
	ExactFive       bool `mapstructure:"exact_five"`
}

// PlayersConfig names the registry players seated by default.
type PlayersConfig struct {
	One string `mapstructure:"one"`
	Two string `mapstructure:"two"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix GOMOKU_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "gomoku", "gomoku.db"))
	v.SetDefault("game.size", 15)
	v.SetDefault("game.game_time_minutes", 5)
	v.SetDefault("game.move_time_seconds", 0)
	v.SetDefault("game.exact_five", false)
	v.SetDefault("players.one", "Human")
	v.SetDefault("players.two", "Greedy")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "gomoku", "gomoku.log"))

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("GOMOKU_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "gomoku"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GOMOKU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI calls it on exit so the last used settings and players stick.
func Save(cfg Config) error {
	path := os.Getenv("GOMOKU_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gomoku", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("game.size", cfg.Game.Size)
	v.Set("game.game_time_minutes", cfg.Game.GameTimeMinutes)
	v.Set("game.move_time_seconds", cfg.Game.MoveTimeSeconds)
	v.Set("game.exact_five", cfg.Game.ExactFive)
	v.Set("players.one", cfg.Players.One)
	v.Set("players.two", cfg.Players.Two)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
