package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the hardcoded 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Undo: UndoConfig{
			MaxDepth: 0,
		},
		Input: InputConfig{
			SwipeThresholdPx: 30,
			CellWidthPx:      8,
			CellHeightPx:     16,
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			Path:   "~/.arcade/t2048.db",
			Redis: RedisConfig{
				URL:       "redis://localhost:6379/0",
				KeyPrefix: "t2048",
			},
		},
		Hint: HintConfig{
			Provider:  HintLocal,
			Timeout:   20 * time.Second,
			RemoteURL: "http://localhost:8080",
			LLM: LLMConfig{
				BaseURL:   "https://api.openai.com/v1",
				Model:     "gpt-4o-mini",
				APIKeyEnv: "OPENAI_API_KEY",
			},
		},
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "t2048", "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
