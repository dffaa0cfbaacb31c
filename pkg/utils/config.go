package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAllowedOrigins is used when CORS_ALLOWED_ORIGINS is unset.
var DefaultAllowedOrigins = []string{
	"http://localhost:3001",
	"http://localhost:3000",
	"https://movies.com",
	"https://midu.dev",
	"http://127.0.0.1:3001",
}

type Config struct {
	App  AppConfig
	CORS CORSConfig
	Seed SeedConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SeedConfig struct {
	// File overrides the embedded seed when set.
	File string
}

// LoadConfig reads .env (optional) and the process environment.
func LoadConfig() (*Config, error) {
	return loadConfig(".env")
}

func loadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movies-api")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ALLOWED_ORIGINS", strings.Join(DefaultAllowedOrigins, ","))
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Seed: SeedConfig{
			File: v.GetString("SEED_FILE"),
		},
	}

	if config.App.Port == "" {
		config.App.Port = "3000"
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
