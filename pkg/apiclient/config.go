package apiclient

import "time"

// Config holds the transport settings for the API client.
type Config struct {
	BaseURL   string        `env:"API_BASE_URL" envDefault:"http://localhost:8081/api/v1"`
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	LoginPath string        `env:"API_LOGIN_PATH" envDefault:"/login"` // navigation target on session expiry
}
