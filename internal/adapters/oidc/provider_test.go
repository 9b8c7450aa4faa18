package oidc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/bookcourier/ui-gateway/internal/ports"
)

// discoveryDocument is the subset of the OIDC discovery document the tests
// serve.
type discoveryDocument struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
	JwksURI               string `json:"jwks_uri"`
}

// createTestProvider creates a provider against a mocked discovery endpoint.
func createTestProvider(t *testing.T) *Provider {
	t.Helper()

	issuer := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc := discoveryDocument{
			Issuer:                issuer,
			AuthorizationEndpoint: "https://accounts.example.com/auth",
			TokenEndpoint:         "https://accounts.example.com/token",
			UserinfoEndpoint:      "https://accounts.example.com/userinfo",
			JwksURI:               "https://accounts.example.com/jwks",
		}
		_ = json.NewEncoder(w).Encode(doc)
	})
	discoveryServer := httptest.NewServer(handler)
	t.Cleanup(discoveryServer.Close)
	issuer = discoveryServer.URL

	provider, err := NewProvider(ProviderConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid profile email",
		IssuerURL:    discoveryServer.URL,
	})
	require.NoError(t, err)
	return provider
}

func TestNewProvider_Success(t *testing.T) {
	provider := createTestProvider(t)
	assert.Equal(t, "https://accounts.example.com/auth", provider.config.Endpoint.AuthURL)
	assert.Equal(t, "https://accounts.example.com/token", provider.config.Endpoint.TokenURL)
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		config ProviderConfig
		errMsg string
	}{
		{
			name: "missing client ID",
			config: ProviderConfig{
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
				IssuerURL:    "http://example.com",
			},
			errMsg: "client ID is required",
		},
		{
			name: "missing client secret",
			config: ProviderConfig{
				ClientID:    "client",
				RedirectURL: "http://localhost/callback",
				IssuerURL:   "http://example.com",
			},
			errMsg: "client secret is required",
		},
		{
			name:   "missing redirect URL",
			config: ProviderConfig{ClientID: "client", ClientSecret: "secret", IssuerURL: "http://example.com"},
			errMsg: "redirect URL is required",
		},
		{
			name: "missing issuer URL",
			config: ProviderConfig{
				ClientID:     "client",
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
			},
			errMsg: "issuer URL is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	provider := createTestProvider(t)

	authURL, state, nonce, err := provider.Begin(context.Background(), ports.BeginInput{
		RedirectURL: "http://localhost:8080/auth/callback",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, authURL)
	assert.NotEmpty(t, state)
	assert.NotEmpty(t, nonce)
	assert.Contains(t, authURL, "https://accounts.example.com/auth")
	assert.Contains(t, authURL, "client_id=test-client")
	assert.Contains(t, authURL, "state="+state)
	assert.Contains(t, authURL, "nonce="+nonce)
}

func TestProvider_Begin_EmptyRedirectURL(t *testing.T) {
	provider := createTestProvider(t)

	_, _, _, err := provider.Begin(context.Background(), ports.BeginInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect URL is required")
}

func TestProvider_Exchange_ValidationErrors(t *testing.T) {
	provider := createTestProvider(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		input  ports.ExchangeInput
		errMsg string
	}{
		{
			name:   "missing code",
			input:  ports.ExchangeInput{State: "state", Nonce: "nonce"},
			errMsg: "authorization code is required",
		},
		{
			name:   "missing state",
			input:  ports.ExchangeInput{Code: "code", Nonce: "nonce"},
			errMsg: "state is required",
		},
		{
			name:   "missing nonce",
			input:  ports.ExchangeInput{Code: "code", State: "state"},
			errMsg: "nonce is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Exchange(ctx, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_ImplementsInterface(t *testing.T) {
	provider := createTestProvider(t)
	var _ ports.IdentityProvider = provider
}

func TestGenerateRandomString(t *testing.T) {
	str1, err := generateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, str1, 16)

	str2, err := generateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, str2, 32)

	assert.NotEqual(t, str1, str2)

	str3, err := generateRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, str1, str3)
}

func TestGetIDTokenFromToken_Success(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "abc.def.ghi"})
	idTok, err := getIDTokenFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", idTok)
}

func TestGetIDTokenFromToken_Missing(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"not_id": "x"})
	_, err := getIDTokenFromToken(tok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id_token")
}

func TestGetIDTokenFromToken_Nil(t *testing.T) {
	_, err := getIDTokenFromToken(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil token")
}

func Test_mapIDTokenClaims(t *testing.T) {
	claims := idTokenClaims{
		Sub:        "sub-123",
		Name:       "Avid Reader",
		GivenName:  "Avid",
		FamilyName: "Reader",
		Email:      "avid@example.com",
		Picture:    "https://img.example.com/avid.png",
	}
	f := mapIDTokenClaims(claims)
	assert.Equal(t, "sub-123", f.subject)
	assert.Equal(t, "Avid Reader", f.displayName())
	assert.Equal(t, "avid@example.com", f.email)
	assert.Equal(t, "https://img.example.com/avid.png", f.picture)
}

func Test_profileFields_displayName_Fallback(t *testing.T) {
	f := profileFields{givenName: "Avid", familyName: "Reader"}
	assert.Equal(t, "Avid Reader", f.displayName())

	f = profileFields{givenName: "Avid"}
	assert.Equal(t, "Avid", f.displayName())
}

func Test_fillFromUserInfoClaims(t *testing.T) {
	ui := idTokenClaims{
		Sub:     "sub-abc",
		Name:    "Avid Reader",
		Email:   "avid@example.com",
		Picture: "https://img.example.com/avid.png",
	}
	var f profileFields
	fillFromUserInfoClaims(&f, ui)
	assert.Equal(t, "sub-abc", f.subject)
	assert.Equal(t, "avid@example.com", f.email)
	assert.Equal(t, "Avid Reader", f.name)
	assert.Equal(t, "https://img.example.com/avid.png", f.picture)

	// Existing fields are not overwritten
	f2 := profileFields{
		subject: "keep",
		name:    "Keep Name",
		email:   "keep@example.com",
		picture: "https://img.example.com/keep.png",
	}
	fillFromUserInfoClaims(&f2, ui)
	assert.Equal(t, "keep", f2.subject)
	assert.Equal(t, "keep@example.com", f2.email)
	assert.Equal(t, "Keep Name", f2.name)
	assert.Equal(t, "https://img.example.com/keep.png", f2.picture)
}
