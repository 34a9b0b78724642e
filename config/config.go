package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type TracingConfig struct {
	Enabled bool
	Output  string
}

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxProcesses          int
	Tracing               TracingConfig
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and exits on invalid settings.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		if config, err = Load(viper.GetViper()); err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads the configuration through v. A missing config file is not an
// error, defaults and SCHEDULER_* environment variables still apply.
func Load(v *viper.Viper) (*SchedulerConfig, error) {
	setDefaults(v)
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxProcesses:          v.GetInt("scheduler.max_processes"),
		Tracing: TracingConfig{
			Enabled: v.GetBool("tracing.enabled"),
			Output:  v.GetString("tracing.output"),
		},
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_processes", 1000)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.output", "")
}

// Validate returns an error describing the first invalid setting.
func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be > 0, got %d", c.RoundRobinTimeQuantum)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("scheduler.max_processes must be > 0, got %d", c.MaxProcesses)
	}
	return nil
}
