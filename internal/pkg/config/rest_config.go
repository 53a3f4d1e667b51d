package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// RestConfig aggregates the settings of the REST API binary.
type RestConfig struct {
	Port     string           `mapstructure:"port"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Database DatabaseSettings `mapstructure:"database"`
	KeyGen   KeyGenSettings   `mapstructure:"keygen"`
}

// Validate checks that all nested settings are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.KeyGen.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig reads the REST API configuration from the given YAML
// file. Every key can be overridden through the environment, e.g.
// TRSA_DATABASE_DSN overrides database.dsn.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("TRSA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("keygen.default_digit_count", 4)
	v.SetDefault("keygen.default_chunk_size", 3)
	v.SetDefault("keygen.max_search_attempts", 100000)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
