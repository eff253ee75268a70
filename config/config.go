package config

import (
	"errors"
	"os"
	"strings"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	Debug          bool
}

// FromEnv reads server configuration from the environment. ALLOWED_ORIGINS
// is required (comma-separated); PORT defaults to the canonical 3131.
func FromEnv() (Config, error) {
	cfg := Config{Port: "3131"}

	origins, exists := os.LookupEnv("ALLOWED_ORIGINS")
	if !exists {
		return Config{}, errors.New("missing allowed origins")
	}
	cfg.AllowedOrigins = strings.Split(origins, ",")

	if port, exists := os.LookupEnv("PORT"); exists {
		cfg.Port = port
	}
	cfg.Debug = os.Getenv("DEBUG") == "true"

	return cfg, nil
}
