package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	DBPooled          bool          `mapstructure:"DB_POOLED"`
	MigrationsEnabled bool          `mapstructure:"MIGRATIONS_ENABLED"`
	SummaryYear       int           `mapstructure:"SUMMARY_YEAR"`
	KakaoAPIKey       string        `mapstructure:"KAKAO_API_KEY"`
	KakaoBaseURL      string        `mapstructure:"KAKAO_BASE_URL"`
	PlacesRadius      int           `mapstructure:"PLACES_RADIUS"`
	PlacesTimeout     time.Duration `mapstructure:"PLACES_TIMEOUT"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	RedisPassword     string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB           int           `mapstructure:"REDIS_DB"`
}

var keys = []string{
	"ENVIRONMENT",
	"SERVER_ADDRESS",
	"DB_SOURCE",
	"DB_POOLED",
	"MIGRATIONS_ENABLED",
	"SUMMARY_YEAR",
	"KAKAO_API_KEY",
	"KAKAO_BASE_URL",
	"PLACES_RADIUS",
	"PLACES_TIMEOUT",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"REDIS_DB",
}

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing app.env is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_POOLED", false)
	v.SetDefault("MIGRATIONS_ENABLED", false)
	v.SetDefault("SUMMARY_YEAR", 2025)
	v.SetDefault("KAKAO_BASE_URL", "https://dapi.kakao.com")
	v.SetDefault("PLACES_RADIUS", 1000)
	v.SetDefault("PLACES_TIMEOUT", time.Duration(0))
	v.SetDefault("REDIS_DB", 0)

	v.AutomaticEnv()
	// AutomaticEnv only answers Get for keys viper already knows about.
	for _, key := range keys {
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

// IsDevelopment reports whether the service runs with developer-friendly output.
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}
