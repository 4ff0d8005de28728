package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (API endpoint, checkout key)
// - default: values common across all environments (timeouts, paths, log settings)
// -----------------------------------------------------------------------------

type Config struct {
	API      APIConfig
	Checkout CheckoutConfig
	Token    TokenConfig
	Log      LogConfig
}

type APIConfig struct {
	BaseURL string `envconfig:"SHADOW_API_URL" default:"http://localhost:8080"`
	Timeout string `envconfig:"SHADOW_API_TIMEOUT" default:"30s"`
}

type CheckoutConfig struct {
	// Public key passed to the hosted checkout widget.
	Key       string `envconfig:"SHADOW_CHECKOUT_KEY" default:"rzp_test_F66suPajOfS7iH"`
	RelayAddr string `envconfig:"SHADOW_CHECKOUT_RELAY_ADDR" default:"127.0.0.1:0"`
	// Theme color applied to the widget UI.
	ThemeColor string `envconfig:"SHADOW_CHECKOUT_THEME" default:"#319795"`
}

type TokenConfig struct {
	// Path of the persisted bearer token; empty means the per-user default.
	Path string `envconfig:"SHADOW_TOKEN_PATH" default:""`
}

type LogConfig struct {
	Level string `envconfig:"SHADOW_LOG_LEVEL" default:"info"`
}

func (t TokenConfig) ResolvePath() (string, error) {
	if t.Path != "" {
		return t.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "shadowevents", "token"), nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:18080",
			Timeout: "5s",
		},
		Checkout: CheckoutConfig{
			Key:        "rzp_test_key",
			RelayAddr:  "127.0.0.1:0",
			ThemeColor: "#319795",
		},
		Log: LogConfig{
			Level: "error", // Error level only for tests
		},
	}
}
