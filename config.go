package autosend

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables honoured by NewFromEnv.
const (
	envAPIKey  = "AUTOSEND_API_KEY"
	envBaseURL = "AUTOSEND_BASE_URL"
)

// NewFromEnv builds a client from the environment. A .env file is loaded
// best-effort first, then AUTOSEND_API_KEY (required) and AUTOSEND_BASE_URL
// (optional) are read. Explicit options are applied after the environment
// and take precedence.
func NewFromEnv(opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv(envAPIKey)
	if base := os.Getenv(envBaseURL); base != "" {
		opts = append([]Option{WithBaseURL(base)}, opts...)
	}

	return New(apiKey, opts...)
}
