package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI      AIConfig      `yaml:"ai"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Quota   QuotaConfig   `yaml:"quota"`
	// Language is the default response language code (en, es, pt). The
	// persisted user preference in the settings store overrides it.
	Language string `yaml:"language"`
}

type AIConfig struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string `yaml:"model"`
	ImageModel   string `yaml:"image_model"`
}

type YouTubeConfig struct {
	// APIKey seeds the settings store on first run; the key is
	// runtime-editable afterwards.
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

type QuotaConfig struct {
	// DailyBudget is the advisory daily unit ceiling shown to the user.
	// The remote API enforces the real one.
	DailyBudget int `yaml:"daily_budget"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		// No config file is fine; everything important comes from env.
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.YouTube.APIKey == "" {
		cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.ImageModel == "" {
		cfg.AI.ImageModel = "imagen-4.0-generate-001"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "data"
	}
	if cfg.Quota.DailyBudget == 0 {
		cfg.Quota.DailyBudget = 10000
	}
	if cfg.Language == "" {
		cfg.Language = "en"
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	// The YouTube key is deliberately not required here: it is
	// user-supplied at runtime and its absence surfaces as a
	// missing-credential error on the calls that need it.
	return nil
}
