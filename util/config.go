package util

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var Validate = validator.New()

type Config struct {
	Port           string `validate:"required,number"`
	StaticDir      string `validate:"required"`
	TimeoutMinutes int    `validate:"required,min=1"`
	CORSOrigins    string `validate:"required"`
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:           GetenvDefault("PORT", "3000"),
		StaticDir:      GetenvDefault("STATIC_DIR", "public"),
		TimeoutMinutes: AtoiDefault(os.Getenv("ROOM_TIMEOUT_MINUTES"), 30),
		CORSOrigins:    GetenvDefault("CORS_ORIGINS", "http://localhost:3000"),
	}

	if err := Validate.Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

// RoomTimeout is the idle window after which an untouched room is evicted.
func (c *Config) RoomTimeout() time.Duration {
	return time.Duration(c.TimeoutMinutes) * time.Minute
}

func (c *Config) AllowedOrigins() []string {
	return strings.Split(c.CORSOrigins, ",")
}
