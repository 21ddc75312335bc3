package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvVars holds the environment-provided configuration. It is parsed once at
// startup and read-only afterwards.
type EnvVars struct {
	Port       string `env:"PORT" envDefault:"3000"`
	AppName    string `env:"APP_NAME" envDefault:"Chapters"`
	Env        string `env:"ENV" envDefault:"development"`
	SessionsDB string `env:"SESSIONS_DB"`

	ClientBaseURL string `env:"CLIENT_BASE_URL"`
	ClientHomeURL string `env:"CLIENT_HOME_URL"`

	SessionSecret string `env:"SESSION_SECRET"`

	GitHubClientID     string `env:"GITHUB_CLIENT_ID"`
	GitHubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
	GitHubRedirectURL  string `env:"GITHUB_REDIRECT_URL"`
	RepoOwner          string `env:"GITHUB_REPO_OWNER"`
	RepoName           string `env:"GITHUB_REPO_NAME"`
}

var _ Config = EnvVars{}

// New parses configuration from the environment.
func New() (Config, error) {
	var e EnvVars
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("[config New] parse env: %w", err)
	}
	return e, nil
}

func (e EnvVars) GetPort() string {
	port := e.Port
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return e.AppName
}

func (e EnvVars) GetEnv() string {
	return e.Env
}

func (e EnvVars) GetSessionsDB() string {
	return e.SessionsDB
}

func (e EnvVars) GetClientBaseURL() string {
	return e.ClientBaseURL
}

func (e EnvVars) GetClientHomeURL() string {
	return e.ClientHomeURL
}

func (e EnvVars) GetAllowedMethods() string {
	return "GET, POST, PUT, PATCH, DELETE"
}

func (e EnvVars) GetAllowedHeaders() string {
	return "Content-Type, Authorization, X-CSRF-Token"
}

func (e EnvVars) GetSessionSecret() string {
	return e.SessionSecret
}

func (e EnvVars) IsProduction() bool {
	return strings.EqualFold(e.Env, "production")
}

func (e EnvVars) GetGitHubClientID() string {
	return e.GitHubClientID
}

func (e EnvVars) GetGitHubClientSecret() string {
	return e.GitHubClientSecret
}

func (e EnvVars) GetGitHubRedirectURL() string {
	return e.GitHubRedirectURL
}

func (e EnvVars) GetRepoOwner() string {
	return e.RepoOwner
}

func (e EnvVars) GetRepoName() string {
	return e.RepoName
}
