package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", ChainMiddleware(s.IndexHandler(), s.StdMiddleware()...))

	// OAuth handshake
	s.RegisterRouteFunc("GET "+RouteAuthGitHub, ChainMiddleware(s.GitHubLoginHandler(), s.StdMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAuthCallback, ChainMiddleware(s.OAuthCallbackHandler(), s.StdMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.StdMiddleware()...))

	// Session-gated routes
	s.RegisterRouteFunc("GET "+RouteAuthMe, ChainMiddleware(s.MeHandler(), s.StdMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteFunc("POST "+RouteChapter, ChainMiddleware(s.ChapterHandler(), s.StdMiddleware(s.RequireSessionAuth(), s.RequireCSRF())...))
}
