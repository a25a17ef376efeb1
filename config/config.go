package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxProcesses          int
	MaxTotalBurst         int
	LogLevel              string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("limits.max_processes", 256)
	v.SetDefault("limits.max_total_burst", 100000)
	v.SetDefault("log.level", "info")
}

// Load reads the configuration file at path, or config.yaml in the working
// directory when path is empty. Environment variables prefixed with SCHEDULER_
// override file values, e.g. SCHEDULER_PORT or
// SCHEDULER_LIMITS_MAX_PROCESSES.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.MaxProcesses = v.GetInt("limits.max_processes")
	cfg.MaxTotalBurst = v.GetInt("limits.max_total_burst")
	cfg.LogLevel = v.GetString("log.level")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be > 0, got %d", c.RoundRobinTimeQuantum)
	}
	if c.MaxProcesses < 0 || c.MaxTotalBurst < 0 {
		return errors.New("limits must not be negative")
	}
	return nil
}
