package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration for the API service. Values are
// read from the environment; a .env file is loaded beforehand in main for
// local development.
type Config struct {
	Stage       string `envconfig:"STAGE" default:"local"`
	Port        string `envconfig:"API_PORT" default:"8000"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Bridge contract access. The RPC endpoint and private key are only
	// required when batch execution is enabled; CRUD-only deployments can
	// run without them.
	RPCURL          string        `envconfig:"RPC_URL"`
	BatcherAddress  string        `envconfig:"BATCHER_CONTRACT_ADDRESS" default:"0xD987E37667b7DD9FAEE3274Cd96272205ea1Db9E"`
	PrivateKey      string        `envconfig:"BRIDGE_PRIVATE_KEY"`
	SourceChainID   int64         `envconfig:"SOURCE_CHAIN_ID" default:"11155111"`
	ReceiptTimeout  time.Duration `envconfig:"RECEIPT_TIMEOUT" default:"5m"`
	ReceiptInterval time.Duration `envconfig:"RECEIPT_POLL_INTERVAL" default:"3s"`

	RateLimitPerSecond int `envconfig:"RATE_LIMIT_PER_SECOND" default:"20"`
	RateLimitBurst     int `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if !IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q: must be one of prod, dev, local", cfg.Stage)
	}
	return &cfg, nil
}

// BridgeEnabled reports whether enough configuration is present to submit
// batch transfers on chain.
func (c *Config) BridgeEnabled() bool {
	return c.RPCURL != "" && c.PrivateKey != ""
}

// IsValidStage checks whether the given stage name is recognized.
func IsValidStage(stage string) bool {
	switch stage {
	case "prod", "dev", "local":
		return true
	}
	return false
}
