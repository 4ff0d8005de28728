package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// StubConfig configures the in-memory reference API server.
type StubConfig struct {
	Server  StubServerConfig
	JWT     JWTConfig
	Payment PaymentConfig
	CORS    CORSConfig
	Log     LogConfig
}

type StubServerConfig struct {
	Port string `envconfig:"STUB_PORT" default:"8080"`
}

type PaymentConfig struct {
	// Key used to sign and verify checkout signatures, standing in for the
	// payment provider's key secret.
	Secret string `envconfig:"STUB_PAYMENT_SECRET" default:"stub-payment-secret"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"STUB_JWT_SECRET" default:"stub-secret-not-for-production"`
	Duration time.Duration `envconfig:"STUB_JWT_DURATION" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"STUB_CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"STUB_CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"STUB_CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	AllowCredentials bool          `envconfig:"STUB_CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"STUB_CORS_MAX_AGE" default:"12h"`
}

func LoadStubConfig() (StubConfig, error) {
	var cfg StubConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return StubConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewStubTestConfig() StubConfig {
	return StubConfig{
		Server: StubServerConfig{Port: "18080"},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Payment: PaymentConfig{Secret: "test-payment-secret"},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		},
		Log: LogConfig{Level: "error"},
	}
}
