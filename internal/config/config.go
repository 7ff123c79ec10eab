// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 client and its hint service.
package config

import "time"

// T2048Config contains all configuration for the 2048 game and its services.
type T2048Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Undo    UndoConfig    `yaml:"undo"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Hint    HintConfig    `yaml:"hint"`
	Server  ServerConfig  `yaml:"server"`
}

// SpawnConfig controls new tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4
}

// UndoConfig controls the undo history.
type UndoConfig struct {
	MaxDepth int `yaml:"max_depth"` // 0 = unlimited
}

// InputConfig controls pointer gestures.
type InputConfig struct {
	SwipeThresholdPx float64 `yaml:"swipe_threshold_px"`
	CellWidthPx      float64 `yaml:"cell_width_px"`  // Nominal terminal cell width
	CellHeightPx     float64 `yaml:"cell_height_px"` // Nominal terminal cell height
}

// StorageConfig selects where game state and best scores live.
type StorageConfig struct {
	Driver string      `yaml:"driver"` // "sqlite", "redis" or "memory"
	Path   string      `yaml:"path"`   // SQLite database file
	Redis  RedisConfig `yaml:"redis"`
}

// RedisConfig defines the Redis connection for the redis driver.
type RedisConfig struct {
	URL       string `yaml:"url"`
	KeyPrefix string `yaml:"key_prefix"`
}

// HintConfig selects the board analysis provider.
type HintConfig struct {
	Provider  string        `yaml:"provider"` // "local", "remote" or "llm"
	Timeout   time.Duration `yaml:"timeout"`
	RemoteURL string        `yaml:"remote_url"` // Base URL of a hintd server
	LLM       LLMConfig     `yaml:"llm"`
}

// LLMConfig defines an OpenAI-compatible chat completion endpoint.
type LLMConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable holding the key
}

// ServerConfig defines the hintd HTTP listener.
type ServerConfig struct {
	Address      string        `yaml:"address"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Hint providers.
const (
	HintLocal  = "local"
	HintRemote = "remote"
	HintLLM    = "llm"
)

// Normalize replaces out-of-range values with defaults.
func (c *T2048Config) Normalize() {
	def := DefaultT2048Config()

	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		c.Spawn.FourProbability = def.Spawn.FourProbability
	}
	if c.Undo.MaxDepth < 0 {
		c.Undo.MaxDepth = 0
	}
	if c.Input.SwipeThresholdPx <= 0 {
		c.Input.SwipeThresholdPx = def.Input.SwipeThresholdPx
	}
	if c.Input.CellWidthPx <= 0 {
		c.Input.CellWidthPx = def.Input.CellWidthPx
	}
	if c.Input.CellHeightPx <= 0 {
		c.Input.CellHeightPx = def.Input.CellHeightPx
	}
	switch c.Storage.Driver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		c.Storage.Driver = def.Storage.Driver
	}
	if c.Storage.Path == "" {
		c.Storage.Path = def.Storage.Path
	}
	switch c.Hint.Provider {
	case HintLocal, HintRemote, HintLLM:
	default:
		c.Hint.Provider = def.Hint.Provider
	}
	if c.Hint.Timeout <= 0 {
		c.Hint.Timeout = def.Hint.Timeout
	}
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Unknown names map to normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
// Easy spawns fewer 4s, hard spawns more and allows a single undo.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.FourProbability = 0.05
		cfg.Undo.MaxDepth = 0
	case DifficultyHard:
		cfg.Spawn.FourProbability = 0.25
		cfg.Undo.MaxDepth = 1
	}
}
