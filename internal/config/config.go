package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var errMissingValue error = errors.New("required configuration value is missing")

// Config holds the full application configuration. Secrets (wallet key,
// node API key, JWT secret) are expected through environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Chain   ChainConfig   `mapstructure:"chain"`
	Wallet  WalletConfig  `mapstructure:"wallet"`
	DB      DBConfig      `mapstructure:"db"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Faucet  FaucetConfig  `mapstructure:"faucet"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type ChainConfig struct {
	Chain   string `mapstructure:"chain"`
	Network string `mapstructure:"network"`
	APIKey  string `mapstructure:"api_key"`
}

type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type WebhookConfig struct {
	SigningKey string `mapstructure:"signing_key"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type FaucetConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration from config.yaml (working directory or ./config)
// overlaid with environment variables, e.g. CHAIN_API_KEY, WALLET_PRIVATE_KEY.
func Load() (Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) validate() error {
	required := map[string]string{
		"chain.api_key":      c.Chain.APIKey,
		"wallet.private_key": c.Wallet.PrivateKey,
		"auth.jwt_secret":    c.Auth.JWTSecret,
		"db.dsn":             c.DB.DSN,
	}

	for key, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s", errMissingValue, key)
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")

	viper.SetDefault("chain.chain", "ethereum")
	viper.SetDefault("chain.network", "sepolia")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("faucet.base_url", "https://faucets.chain.link")
}
