package configloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when CONFIG_PATH is not set.
const DefaultPath = "config/config.yml"

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`  // seconds
	WriteTimeout int    `yaml:"writeTimeout"` // seconds
	IdleTimeout  int    `yaml:"idleTimeout"`  // seconds
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// EtherscanConfig holds chain explorer API configuration.
type EtherscanConfig struct {
	BaseURL              string `yaml:"baseURL"`
	APIKey               string `yaml:"apiKey"`
	BalanceTimeoutMillis int64  `yaml:"balanceTimeoutMillis"`
	TxListTimeoutMillis  int64  `yaml:"txListTimeoutMillis"`
	TokenTxTimeoutMillis int64  `yaml:"tokenTxTimeoutMillis"`
}

// MoralisConfig holds token/NFT indexer API configuration.
type MoralisConfig struct {
	BaseURL              string `yaml:"baseURL"`
	APIKey               string `yaml:"apiKey"`
	Chain                string `yaml:"chain"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// CoinGeckoConfig holds CoinGecko API specific configurations.
type CoinGeckoConfig struct {
	BaseURL              string `yaml:"baseURL"`
	APIKey               string `yaml:"apiKey"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// PricesConfig extends or overrides the built-in symbol -> price id table.
type PricesConfig struct {
	SymbolIDs map[string]string `yaml:"symbolIds"`
}

// WalletsConfig holds the bookmarked/recent wallet file settings.
type WalletsConfig struct {
	FilePath  string `yaml:"filePath"`
	MaxRecent int    `yaml:"maxRecent"`
}

// NFTConfig controls NFT image normalization.
type NFTConfig struct {
	IPFSGateway      string `yaml:"ipfsGateway"`
	PlaceholderImage string `yaml:"placeholderImage"`
}

// DashboardConfig holds presentation settings.
type DashboardConfig struct {
	TopTransactions int `yaml:"topTransactions"`
}

// TelemetryConfig holds tracing settings. An empty endpoint disables export.
type TelemetryConfig struct {
	ServiceName  string `yaml:"serviceName"`
	OTLPEndpoint string `yaml:"otlpEndpoint"`
}

// SwaggerConfig holds configuration for Swagger UI.
type SwaggerConfig struct {
	Enabled  bool   `yaml:"enabled"`
	SpecFile string `yaml:"specFile"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Etherscan EtherscanConfig `yaml:"etherscan"`
	Moralis   MoralisConfig   `yaml:"moralis"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Prices    PricesConfig    `yaml:"prices"`
	Wallets   WalletsConfig   `yaml:"wallets"`
	NFT       NFTConfig       `yaml:"nft"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Swagger   SwaggerConfig   `yaml:"swagger"`
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Path returns CONFIG_PATH or DefaultPath.
func Path() string {
	if p := strings.TrimSpace(os.Getenv("CONFIG_PATH")); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads the YAML file at path (a missing file means "all defaults"), applies API keys from
// the environment (after loading .env if present) and fills in defaults.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.Warnf("Config file %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("Could not load .env file: %v", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.Etherscan.APIKey == "" {
		logrus.Warn("ETHERSCAN_API_KEY not set; Etherscan requests will be rate limited or rejected")
	}
	if cfg.Moralis.APIKey == "" {
		logrus.Warn("MORALIS_API_KEY not set; token and NFT sections will be empty")
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ETHERSCAN_API_KEY"); v != "" {
		c.Etherscan.APIKey = v
	}
	if v := os.Getenv("MORALIS_API_KEY"); v != "" {
		c.Moralis.APIKey = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		c.CoinGecko.APIKey = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.OTLPEndpoint = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout <= 0 {
		// a section can wait on up to three sequential upstream calls
		c.Server.WriteTimeout = 60
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Etherscan.BaseURL == "" {
		c.Etherscan.BaseURL = "https://api.etherscan.io/api"
	}
	if c.Etherscan.BalanceTimeoutMillis <= 0 {
		c.Etherscan.BalanceTimeoutMillis = 10000
	}
	if c.Etherscan.TxListTimeoutMillis <= 0 {
		c.Etherscan.TxListTimeoutMillis = 15000
	}
	if c.Etherscan.TokenTxTimeoutMillis <= 0 {
		c.Etherscan.TokenTxTimeoutMillis = 15000
	}

	if c.Moralis.BaseURL == "" {
		c.Moralis.BaseURL = "https://deep-index.moralis.io/api/v2"
	}
	if c.Moralis.Chain == "" {
		c.Moralis.Chain = "eth"
	}
	if c.Moralis.RequestTimeoutMillis <= 0 {
		c.Moralis.RequestTimeoutMillis = 10000
	}

	if c.CoinGecko.BaseURL == "" {
		c.CoinGecko.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if c.CoinGecko.RequestTimeoutMillis <= 0 {
		c.CoinGecko.RequestTimeoutMillis = 10000
	}

	if c.Wallets.FilePath == "" {
		c.Wallets.FilePath = "data/wallets.json"
	}
	if c.Wallets.MaxRecent <= 0 {
		c.Wallets.MaxRecent = 10
	}
	if c.NFT.IPFSGateway == "" {
		c.NFT.IPFSGateway = "https://ipfs.io/ipfs/"
	}
	if c.NFT.PlaceholderImage == "" {
		c.NFT.PlaceholderImage = "assets/Placeholder.png"
	}
	if c.Dashboard.TopTransactions <= 0 {
		c.Dashboard.TopTransactions = 10
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "wallet_tracker"
	}
	if c.Swagger.SpecFile == "" {
		c.Swagger.SpecFile = "docs/swagger.yaml"
	}
}
