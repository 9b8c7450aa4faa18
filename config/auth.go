package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the identity-provider mode for delegated sign-in.
type AuthMode string

const (
	// AuthModeOAuth uses OAuth/OIDC for the provider sign-in flow.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses a config-driven dev identity (development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig contains OAuth/OIDC configuration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL" envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"        envDefault:"openid profile email"`
	IssuerURL    string `env:"ISSUER_URL"   envDefault:"https://accounts.google.com"`
}

// DevAuthConfig controls the mock identity returned by the dev provider.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	Subject  string `env:"SUBJECT"   envDefault:"dev-user"`
	Name     string `env:"NAME"      envDefault:"Dev User"`
	Email    string `env:"EMAIL"     envDefault:"dev@example.com"`
	PhotoURL string `env:"PHOTO_URL" envDefault:""`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which identity provider backs delegated sign-in.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// OAuth configuration (used when Mode=oauth).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// SessionConfig controls server-side session persistence.
type SessionConfig struct {
	// TTL bounds how long a session lives without a fresh login.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// Redis connection settings for the session store.
	RedisAddr     string `env:"SESSION_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"SESSION_REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"SESSION_REDIS_DB"       envDefault:"0"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 720 * time.Hour
	}
	if s.RedisDB < 0 {
		s.RedisDB = 0
	}
}
