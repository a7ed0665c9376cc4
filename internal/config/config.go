package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	SessionTTL      time.Duration `mapstructure:"SESSION_TTL"`
	SimulationDelay time.Duration `mapstructure:"SIMULATION_DELAY"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("SIMULATION_DELAY", "1500ms")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
