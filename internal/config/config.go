package config

type Config interface {
	EnvConfig
	CorsConfig
	GitHubConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetSessionsDB() string
}

type CorsConfig interface {
	GetClientBaseURL() string
	GetClientHomeURL() string
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type GitHubConfig interface {
	GetGitHubClientID() string
	GetGitHubClientSecret() string
	GetGitHubRedirectURL() string
	GetRepoOwner() string
	GetRepoName() string
}

type SecurityConfig interface {
	GetSessionSecret() string
	IsProduction() bool
}
