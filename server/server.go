package server

import (
	"fmt"
	"net/http"

	"github.com/bit-orbit/oauth/auth"
	"github.com/bit-orbit/oauth/auth/statestore"
	"github.com/bit-orbit/oauth/clients"
	"github.com/bit-orbit/oauth/internal/config"
	"github.com/bit-orbit/oauth/sessions"
	"github.com/rs/zerolog/log"
)

type Server struct {
	env      string // Environment (e.g., "development", "production")
	mux      *http.ServeMux
	handler  http.HandlerFunc
	routes   []string
	config   config.Config
	auth     *auth.Service
	sessions sessions.Repo
	cookies  *sessions.CookieCodec
	github   clients.GitHubAPI
}

func New(cfg config.Config, sessionRepo sessions.Repo, stateRepo statestore.Repo, github clients.GitHubAPI, authOpts ...auth.Option) (*Server, error) {
	cookies, err := sessions.NewCookieCodec(cfg.GetSessionSecret())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create cookie codec: %w", err)
	}

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		auth:     auth.NewService(cfg, stateRepo, github, authOpts...),
		sessions: sessionRepo,
		cookies:  cookies,
		github:   github,
	}

	s.initRoutes()
	s.logRoutes()

	// CORS runs ahead of routing so preflight OPTIONS requests are answered
	// before the method-qualified mux can reject them with a 405.
	s.handler = s.CorsMiddleware(s.mux.ServeHTTP)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.config.IsProduction() {
		return // Skip logging outside development environments
	}
	for _, route := range s.routes {
		log.Debug().Str("route", route).Msg("registered route")
	}
}
