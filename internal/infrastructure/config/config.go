package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	API        APIConfig        `mapstructure:"api"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration for the inference service
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// APIConfig holds configuration for calling the sentiment API
type APIConfig struct {
	// BaseURL is the address of the inference service
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds a single prediction request
	Timeout time.Duration `mapstructure:"timeout"`

	// ItemTimeout bounds each item of a batch independently
	ItemTimeout time.Duration `mapstructure:"item_timeout"`

	// ProbeTimeout bounds the health check probe
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`
}

// ClassifierConfig holds the model configuration for the inference service
type ClassifierConfig struct {
	// Backend selects the model implementation: "onnx" or "vader"
	Backend string `mapstructure:"backend"`

	// ModelDir is where the ONNX model is stored and downloaded to
	ModelDir string `mapstructure:"model_dir"`

	// ModelName is the Hugging Face model to download when missing
	ModelName string `mapstructure:"model_name"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// Output is "stdout" or "stderr". The MCP gateway must log to stderr
	// because stdout carries the protocol stream.
	Output string `mapstructure:"output"`
}

// Load reads configuration from the environment with sensible defaults.
// Variables use the SENTIMENT_ prefix, e.g. SENTIMENT_API_BASE_URL.
func Load() (*Config, error) {
	// Optional .env file for local development
	_ = gotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")

	// API client defaults
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.item_timeout", "30s")
	v.SetDefault("api.probe_timeout", "10s")

	// Classifier defaults
	v.SetDefault("classifier.backend", "onnx")
	v.SetDefault("classifier.model_dir", "model")
	v.SetDefault("classifier.model_name", "distilbert-base-uncased-finetuned-sst-2-english")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
}
