package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	// FrontendURL is the single origin allowed by CORS.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present (development mode).
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
