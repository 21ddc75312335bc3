package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	RouteIndex        = "/"
	RouteAuthGitHub   = "/auth/github"
	RouteAuthCallback = "/auth/callback"
	RouteAuthMe       = "/auth/me"
	RouteChapter      = "/chapter"
	RouteLogout       = "/logout"
)
