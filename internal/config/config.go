package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string `mapstructure:"ENV"`
	DataDir  string `mapstructure:"DATA_DIR"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	MaxPatients     int `mapstructure:"MAX_PATIENTS"`
	MaxDoctors      int `mapstructure:"MAX_DOCTORS"`
	MaxAppointments int `mapstructure:"MAX_APPOINTMENTS"`
	MaxMedicines    int `mapstructure:"MAX_MEDICINES"`
	MaxInvoices     int `mapstructure:"MAX_INVOICES"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults, including the per-store record limits.
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_PATIENTS", 1000)
	v.SetDefault("MAX_DOCTORS", 300)
	v.SetDefault("MAX_APPOINTMENTS", 3000)
	v.SetDefault("MAX_MEDICINES", 800)
	v.SetDefault("MAX_INVOICES", 6000)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("MAX_PATIENTS")
	v.BindEnv("MAX_DOCTORS")
	v.BindEnv("MAX_APPOINTMENTS")
	v.BindEnv("MAX_MEDICINES")
	v.BindEnv("MAX_INVOICES")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is usable. A capacity of zero or
// less disables that store's bound, so capacities are not range-checked.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	return nil
}
