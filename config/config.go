package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Oracle configuration
	Oracle OracleConfig `json:"oracle"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// GameConfig holds the gameplay constants
type GameConfig struct {
	// Base stamina cap for a level 1 user
	MaxStamina int `json:"max_stamina"`

	// Stamina gained per regeneration tick
	StaminaRegenRate int `json:"stamina_regen_rate"`

	// Seconds between regeneration ticks
	StaminaRegenIntervalSeconds int `json:"stamina_regen_interval_seconds"`

	// XP threshold for level 2
	LevelUpXPBase int `json:"level_up_xp_base"`

	// Growth factor applied to the threshold per level
	LevelUpXPMultiplier float64 `json:"level_up_xp_multiplier"`

	// Stamina cap bonus granted on each level up
	LevelUpStaminaBonus int `json:"level_up_stamina_bonus"`

	// Stamina cost of a hack attempt
	HackStaminaCost int `json:"hack_stamina_cost"`

	// XP granted on a successful hack
	HackSuccessXP int `json:"hack_success_xp"`

	// XP granted on a failed hack
	HackFailureXP int `json:"hack_failure_xp"`

	// Fraction of the target's creds stolen on success (0-1)
	HackCredStealPercentage float64 `json:"hack_cred_steal_percentage"`
}

// StorageConfig holds persistence specific configuration
type StorageConfig struct {
	// Storage driver (file or sqlite)
	Driver string `json:"driver"`

	// Directory for the file driver's per-user state files
	DataDir string `json:"data_dir"`

	// SQLite DSN for the sqlite driver
	DSN string `json:"dsn"`
}

// OracleConfig holds trivia oracle specific configuration
type OracleConfig struct {
	// Base URL of the text generation endpoint
	BaseURL string `json:"base_url"`

	// API key sent with each request
	APIKey string `json:"api_key"`

	// Model identifier
	Model string `json:"model"`

	// Request timeout in seconds
	TimeoutSeconds int `json:"timeout_seconds"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			MaxStamina:                  100,
			StaminaRegenRate:            1,
			StaminaRegenIntervalSeconds: 60,
			LevelUpXPBase:               1000,
			LevelUpXPMultiplier:         1.5,
			LevelUpStaminaBonus:         10,
			HackStaminaCost:             20,
			HackSuccessXP:               50,
			HackFailureXP:               10,
			HackCredStealPercentage:     0.1,
		},
		Storage: StorageConfig{
			Driver:  "file",
			DataDir: "./data",
			DSN:     "./brain-heist.db",
		},
		Oracle: OracleConfig{
			BaseURL:        "https://generativelanguage.googleapis.com",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 15,
		},
		Server: ServerConfig{
			Port:     "8080",
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		file, err := os.Create(path)
		if err != nil {
			return config, err
		}
		defer file.Close()

		encoder := json.NewEncoder(file)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(config); err != nil {
			return config, err
		}

		return config, nil
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
