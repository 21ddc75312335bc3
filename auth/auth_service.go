package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/bit-orbit/oauth/auth/statestore"
	"github.com/bit-orbit/oauth/clients"
	"github.com/bit-orbit/oauth/internal/config"
	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/bit-orbit/oauth/principal"
	"golang.org/x/oauth2"
	githubendpoint "golang.org/x/oauth2/github"
)

// Scopes requested from the identity provider: read access to the user's
// verified email identity and read/write access to their repositories.
var Scopes = []string{"user:email", "repo"}

// Service orchestrates the delegated-authorization handshake against GitHub.
// It is an explicit instance constructed with configuration and injected into
// the routing layer; no process-wide registry.
type Service struct {
	oauth    *oauth2.Config
	states   statestore.Repo
	profiles clients.ProfileFetcher
}

// Option adjusts a Service after construction.
type Option func(*Service)

// WithEndpoint overrides the provider endpoints. Used by tests to point the
// code exchange at a local server.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(s *Service) {
		s.oauth.Endpoint = endpoint
	}
}

// NewService creates the handshake orchestrator.
func NewService(cfg config.GitHubConfig, states statestore.Repo, profiles clients.ProfileFetcher, opts ...Option) *Service {
	s := &Service{
		oauth: &oauth2.Config{
			ClientID:     cfg.GetGitHubClientID(),
			ClientSecret: cfg.GetGitHubClientSecret(),
			RedirectURL:  cfg.GetGitHubRedirectURL(),
			Endpoint:     githubendpoint.Endpoint,
			Scopes:       Scopes,
		},
		states:   states,
		profiles: profiles,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoginURL registers a fresh state parameter and returns the provider's
// consent-screen URL. No session is created at this point.
func (s *Service) LoginURL() (string, error) {
	state := RandomToken(32)
	if err := s.states.Upsert(state, &statestore.LoginState{CreatedAt: time.Now()}); err != nil {
		return "", errs.Wrapf(err, "[auth LoginURL] store state")
	}
	return s.oauth.AuthCodeURL(state), nil
}

// Complete finishes the handshake: it consumes the state parameter, exchanges
// the authorization code for a token pair, fetches the profile with the new
// token, and projects the result into a Principal. The Principal is only
// returned on full success, so no Principal ever exists without an access
// token.
func (s *Service) Complete(ctx context.Context, state, code string) (principal.Principal, error) {
	if _, err := s.states.Consume(state); err != nil {
		return principal.Principal{}, errs.Wrapf(errs.ErrInvalidState, "[auth Complete] unknown state")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return principal.Principal{}, errs.Wrapf(err, "[auth Complete] code exchange")
	}

	profile, err := s.profiles.Profile(ctx, token.AccessToken)
	if err != nil {
		return principal.Principal{}, errs.Wrapf(err, "[auth Complete] fetch profile")
	}

	return principal.Serialize(profile, token.AccessToken, token.RefreshToken), nil
}

// RandomToken creates a random base64url string
func RandomToken(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
