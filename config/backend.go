package config

import "time"

// BackendConfig contains the BookCourier API client configuration.
// All variables carry the BACKEND_ prefix.
type BackendConfig struct {
	// BaseURL is the root of the backend REST API,
	// e.g. "https://api.bookcourier.example.com/api/v1".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000/api/v1"`

	// Timeout bounds each backend round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 15 * time.Second
	}
}
