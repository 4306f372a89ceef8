// Package config loads controller configuration from a YAML file and
// MICROWAVE_* environment variables, with sensible defaults for running
// with no configuration at all.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Input modes.
const (
	ModeKeyboard = "keyboard"
	ModeScript   = "script"
	ModeMQTT     = "mqtt"
)

// Config is the root configuration for the microwave controller.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Cooking CookingConfig `mapstructure:"cooking"`
	Driver  DriverConfig  `mapstructure:"driver"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// InputConfig selects where event symbols come from.
type InputConfig struct {
	Mode   string     `mapstructure:"mode"`
	Script string     `mapstructure:"script"`
	MQTT   MQTTConfig `mapstructure:"mqtt"`
}

// MQTTConfig configures the MQTT input mode. KeepAlive is in seconds.
type MQTTConfig struct {
	BrokerURL string `mapstructure:"broker_url"`
	Topic     string `mapstructure:"topic"`
	ClientID  string `mapstructure:"client_id"`
	KeepAlive uint16 `mapstructure:"keep_alive"`
}

// CookingConfig tunes the cooking state.
type CookingConfig struct {
	HeartbeatInterval time.Duration `mapstructure:"heartbeat_interval"`
}

// DriverConfig tunes the event loop.
type DriverConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// LoggerConfig configures diagnostic logging.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// MetricsConfig configures the admin HTTP endpoint.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"`
}

// Load reads configuration from the given file path (optional, empty skips
// the file), applies MICROWAVE_* environment overrides and validates the
// result.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.mode", ModeKeyboard)
	v.SetDefault("input.script", "")
	v.SetDefault("input.mqtt.broker_url", "mqtt://localhost:1883")
	v.SetDefault("input.mqtt.topic", "microwave/control")
	v.SetDefault("input.mqtt.client_id", "")
	v.SetDefault("input.mqtt.keep_alive", 20)
	v.SetDefault("cooking.heartbeat_interval", 200*time.Millisecond)
	v.SetDefault("driver.poll_interval", time.Duration(0))
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.listen_addr", ":9090")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("input.mode", "MICROWAVE_INPUT_MODE")
	v.BindEnv("input.script", "MICROWAVE_INPUT_SCRIPT")
	v.BindEnv("input.mqtt.broker_url", "MICROWAVE_MQTT_BROKER_URL")
	v.BindEnv("input.mqtt.topic", "MICROWAVE_MQTT_TOPIC")
	v.BindEnv("input.mqtt.client_id", "MICROWAVE_MQTT_CLIENT_ID")
	v.BindEnv("logger.level", "MICROWAVE_LOG_LEVEL")
	v.BindEnv("logger.format", "MICROWAVE_LOG_FORMAT")
	v.BindEnv("metrics.enabled", "MICROWAVE_METRICS_ENABLED")
	v.BindEnv("metrics.listen_addr", "MICROWAVE_METRICS_LISTEN_ADDR")
}

// Validate rejects configurations the controller cannot run with.
func (c *Config) Validate() error {
	switch c.Input.Mode {
	case ModeKeyboard:
	case ModeScript:
		if c.Input.Script == "" {
			return fmt.Errorf("input mode %q requires input.script", ModeScript)
		}
	case ModeMQTT:
		if c.Input.MQTT.BrokerURL == "" {
			return fmt.Errorf("input mode %q requires input.mqtt.broker_url", ModeMQTT)
		}
		if c.Input.MQTT.Topic == "" {
			return fmt.Errorf("input mode %q requires input.mqtt.topic", ModeMQTT)
		}
	default:
		return fmt.Errorf("unknown input mode %q", c.Input.Mode)
	}

	if c.Cooking.HeartbeatInterval <= 0 {
		return fmt.Errorf("cooking.heartbeat_interval must be positive, got %s", c.Cooking.HeartbeatInterval)
	}

	if c.Driver.PollInterval < 0 {
		return fmt.Errorf("driver.poll_interval must not be negative, got %s", c.Driver.PollInterval)
	}

	if c.Metrics.Enabled && c.Metrics.ListenAddr == "" {
		return fmt.Errorf("metrics.listen_addr is required when metrics are enabled")
	}

	return nil
}
