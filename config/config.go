package config

import (
	"os"
	"strconv"

	"github.com/ezkit-shop/storefront/utils"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the client
type Config struct {
	APIBaseURL         string
	HTTPTimeoutSeconds int
	Env                string
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not an error; the process environment alone is enough.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		APIBaseURL:         os.Getenv("API_BASE_URL"),
		HTTPTimeoutSeconds: utils.DefaultHTTPTimeoutSeconds,
		Env:                os.Getenv("ENV"),
	}

	if config.APIBaseURL == "" {
		config.APIBaseURL = utils.DefaultAPIBaseURL
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		timeout, err := strconv.Atoi(v)
		if err != nil || timeout < 0 {
			return nil, utils.BadRequestError("HTTP_TIMEOUT_SECONDS must be a non-negative integer", err)
		}
		config.HTTPTimeoutSeconds = timeout
	}

	return config, nil
}
