package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shipflow/ordergateway/pkg/eccang"
	"github.com/shipflow/ordergateway/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Database mysql.Config  `mapstructure:"database"`
	Carrier  eccang.Config `mapstructure:"carrier"`
	Tracking Tracking      `mapstructure:"tracking"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Tracking struct {
	PollAttempts     int           `mapstructure:"poll_attempts"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	ResolveSchedule  string        `mapstructure:"resolve_schedule"`
	ResolveBatchSize int           `mapstructure:"resolve_batch_size"`
}

// Load reads config/config.yml with environment overrides. Missing carrier
// credentials stay empty strings so every call fails at the carrier rather
// than at startup.
func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	viper.SetDefault("api.port", ":8080")
	viper.SetDefault("carrier.timeout", "30s")
	viper.SetDefault("tracking.poll_attempts", 5)
	viper.SetDefault("tracking.poll_interval", "2s")
	viper.SetDefault("tracking.resolve_schedule", "@every 5m")
	viper.SetDefault("tracking.resolve_batch_size", 50)

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
