package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// SessionServiceOptions groups dependencies for SessionService.
type SessionServiceOptions struct {
	Users    ports.UserGateway
	Provider ports.IdentityProvider
	Sessions ports.SessionStore

	// TTL bounds session lifetime; zero means DefaultSessionTTL.
	TTL time.Duration
}

// DefaultSessionTTL is used when no session TTL is configured.
const DefaultSessionTTL = 30 * 24 * time.Hour

// SessionListener observes session lifecycle changes. active is false when
// the session ended (logout or expiry detected on restore).
type SessionListener func(sess domainauth.Session, active bool)

// SessionService owns the authentication lifecycle: credential and
// provider-based login, registration, restore-on-revisit, profile updates,
// and logout. Sessions persist in the configured SessionStore; the backend
// bearer token never leaves the server side.
type SessionService struct {
	users    ports.UserGateway
	provider ports.IdentityProvider
	sessions ports.SessionStore
	ttl      time.Duration

	mu        sync.Mutex
	listeners []SessionListener
}

// NewSessionService constructs a new SessionService.
func NewSessionService(opts SessionServiceOptions) *SessionService {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{
		users:    opts.Users,
		provider: opts.Provider,
		sessions: opts.Sessions,
		ttl:      ttl,
	}
}

// Subscribe registers a listener for session lifecycle changes. Listeners
// run synchronously on the calling goroutine.
func (s *SessionService) Subscribe(fn SessionListener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *SessionService) notify(sess domainauth.Session, active bool) {
	s.mu.Lock()
	listeners := make([]SessionListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(sess, active)
	}
}

// Login exchanges credentials with the backend and persists a new session.
func (s *SessionService) Login(ctx context.Context, creds model.Credentials) (*domainauth.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.users.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("backend login: %w", err)
	}
	return s.establish(ctx, payload)
}

// Register creates an account and persists a session in one step; the
// backend signs the user in as part of registration.
func (s *SessionService) Register(ctx context.Context, req model.RegisterRequest) (*domainauth.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("backend register: %w", err)
	}
	return s.establish(ctx, payload)
}

// BeginProviderLoginResult contains the provider redirect plus the state and
// nonce the callback must verify.
type BeginProviderLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginProviderLogin initiates delegated sign-in and returns the provider
// auth URL with state and nonce.
func (s *SessionService) BeginProviderLogin(ctx context.Context, redirectURL string) (*BeginProviderLoginResult, error) {
	if s.provider == nil {
		return nil, apperrors.Unavailable("provider sign-in is not configured")
	}
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin provider flow: %w", err)
	}
	return &BeginProviderLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteProviderLoginInput groups parameters for completing delegated sign-in.
type CompleteProviderLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteProviderLogin exchanges the callback code for a verified profile,
// trades that profile with the backend for a token (creating the account on
// first sign-in), and persists the session.
func (s *SessionService) CompleteProviderLogin(ctx context.Context, input CompleteProviderLoginInput) (*domainauth.Session, error) {
	if s.provider == nil {
		return nil, apperrors.Unavailable("provider sign-in is not configured")
	}
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	payload, err := s.users.ExchangeIdentity(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("backend identity exchange: %w", err)
	}
	return s.establish(ctx, payload)
}

// Restore loads the session for a returning visitor. Absent, corrupt, or
// expired records come back as Unauthorized; the store self-heals bad
// records so the next login starts clean.
func (s *SessionService) Restore(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthorized("no active session")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "no active session")
	}
	return &sess, nil
}

// Logout removes a session. Logging out an already-absent session is a no-op.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil // Already gone
	}
	if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
		return fmt.Errorf("delete session: %w", deleteErr)
	}
	s.notify(sess, false)
	return nil
}

// UpdateProfile applies a partial profile update on the backend, then merges
// the accepted fields into the stored session so subsequent reads reflect
// them without a re-login.
func (s *SessionService) UpdateProfile(ctx context.Context, sessionID string, req model.UpdateProfileRequest) (*domainauth.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !req.HasUpdates() {
		return nil, apperrors.Validation("no profile fields to update")
	}

	sess, err := s.Restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	ctx = domainauth.WithToken(ctx, sess.Token)
	if err := s.users.UpdateProfile(ctx, req); err != nil {
		return nil, fmt.Errorf("backend profile update: %w", err)
	}

	if req.Name != nil {
		sess.Name = *req.Name
	}
	if req.PhotoURL != nil {
		sess.PhotoURL = *req.PhotoURL
	}
	if saveErr := s.sessions.Save(ctx, *sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	s.notify(*sess, true)
	return sess, nil
}

// RequestLibrarian files a librarian promotion request and flags the stored
// session so the UI can show the pending state.
func (s *SessionService) RequestLibrarian(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	sess, err := s.Restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Role != domainauth.RoleUser {
		return nil, apperrors.Conflict("only readers can request librarian access")
	}
	if sess.LibrarianRequest {
		return nil, apperrors.Conflict("librarian request already pending")
	}

	ctx = domainauth.WithToken(ctx, sess.Token)
	if err := s.users.RequestLibrarian(ctx); err != nil {
		return nil, fmt.Errorf("backend librarian request: %w", err)
	}

	sess.LibrarianRequest = true
	if saveErr := s.sessions.Save(ctx, *sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	s.notify(*sess, true)
	return sess, nil
}

// establish persists a session for a fresh backend auth payload.
func (s *SessionService) establish(ctx context.Context, payload ports.AuthPayload) (*domainauth.Session, error) {
	if payload.Token == "" {
		return nil, apperrors.Internal("backend auth response missing token")
	}
	role, ok := domainauth.ParseRole(string(payload.User.Role))
	if !ok {
		return nil, apperrors.Internalf("backend auth response carries unknown role %q", payload.User.Role)
	}

	sess := domainauth.Session{
		ID:               uuid.NewString(),
		Token:            payload.Token,
		UserID:           payload.User.ID,
		Name:             payload.User.Name,
		Email:            payload.User.Email,
		PhotoURL:         payload.User.PhotoURL,
		Role:             role,
		LibrarianRequest: payload.User.LibrarianRequest,
		ExpiresAt:        time.Now().Add(s.ttl),
	}

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}
	s.notify(sess, true)
	return &sess, nil
}
