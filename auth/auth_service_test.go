package auth_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bit-orbit/oauth/auth"
	"github.com/bit-orbit/oauth/auth/statestore"
	"github.com/bit-orbit/oauth/clients/clientfakes"
	"github.com/bit-orbit/oauth/internal/config"
	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/bit-orbit/oauth/principal"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type testGitHubConfig struct {
	config.GitHubConfig
}

func (testGitHubConfig) GetGitHubClientID() string     { return "client-id" }
func (testGitHubConfig) GetGitHubClientSecret() string { return "client-secret" }
func (testGitHubConfig) GetGitHubRedirectURL() string {
	return "https://api.example.com/auth/callback"
}

// newTokenServer serves a minimal token endpoint for the code exchange.
func newTokenServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"bad_verification_code"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"tok","refresh_token":"refresh","token_type":"bearer"}`)
	}))
}

func newTestService(t *testing.T, ts *httptest.Server, github *clientfakes.FakeGitHub) (*auth.Service, *statestore.InMemoryRepo) {
	t.Helper()

	states := statestore.NewInMemoryRepo(time.Minute)
	service := auth.NewService(testGitHubConfig{}, states, github, auth.WithEndpoint(oauth2.Endpoint{
		AuthURL:  ts.URL + "/authorize",
		TokenURL: ts.URL + "/token",
	}))
	return service, states
}

// loginState kicks off a login and extracts the registered state parameter.
func loginState(t *testing.T, service *auth.Service) string {
	t.Helper()

	loginURL, err := service.LoginURL()
	require.NoError(t, err)

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)

	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func TestLoginURL(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	service, states := newTestService(t, ts, clientfakes.NewFakeGitHub())

	loginURL, err := service.LoginURL()
	require.NoError(t, err)

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)

	query := parsed.Query()
	require.Equal(t, "client-id", query.Get("client_id"))
	require.Equal(t, "user:email repo", query.Get("scope"))
	require.Equal(t, "https://api.example.com/auth/callback", query.Get("redirect_uri"))

	_, err = states.Get(query.Get("state"))
	require.NoError(t, err)
}

func TestCompleteSuccess(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	github := clientfakes.NewFakeGitHub()
	github.ProfileResult = principal.Profile{ID: "42", Username: "ada", DisplayName: "Ada Lovelace"}

	service, _ := newTestService(t, ts, github)
	state := loginState(t, service)

	p, err := service.Complete(context.Background(), state, "good-code")
	require.NoError(t, err)

	require.Equal(t, "42", p.ID)
	require.Equal(t, "ada", p.Username)
	require.Equal(t, "Ada Lovelace", p.Name)
	require.Equal(t, "tok", p.AccessToken)
	require.Equal(t, "refresh", p.RefreshToken)
}

func TestCompleteUnknownState(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	service, _ := newTestService(t, ts, clientfakes.NewFakeGitHub())

	_, err := service.Complete(context.Background(), "never-registered", "good-code")
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCompleteStateIsSingleUse(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	github := clientfakes.NewFakeGitHub()
	github.ProfileResult = principal.Profile{ID: "42", Username: "ada"}

	service, _ := newTestService(t, ts, github)
	state := loginState(t, service)

	_, err := service.Complete(context.Background(), state, "good-code")
	require.NoError(t, err)

	_, err = service.Complete(context.Background(), state, "good-code")
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestCompleteExchangeFailure(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	service, _ := newTestService(t, ts, clientfakes.NewFakeGitHub())
	state := loginState(t, service)

	_, err := service.Complete(context.Background(), state, "bad-code")
	require.Error(t, err)
}

func TestCompleteProfileFailure(t *testing.T) {
	ts := newTokenServer(t)
	defer ts.Close()

	github := clientfakes.NewFakeGitHub()
	github.ProfileErr = fmt.Errorf("github is down")

	service, _ := newTestService(t, ts, github)
	state := loginState(t, service)

	_, err := service.Complete(context.Background(), state, "good-code")
	require.Error(t, err)
}

func TestRandomTokenUniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := auth.RandomToken(32)
		require.NotEmpty(t, token)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}
