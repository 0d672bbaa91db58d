package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	JWTSecret  string
	TokenTTL   time.Duration
	ServerPort string
}

func Load() *Config {
	// Optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBPath:     getEnv("DATABASE_PATH", "./reservations.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		TokenTTL:   time.Hour,
		ServerPort: getEnv("SERVER_PORT", "3000"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
