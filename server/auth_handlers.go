package server

import (
	"net/http"
	"time"

	"github.com/bit-orbit/oauth/auth"
	"github.com/bit-orbit/oauth/sessions"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GitHubLoginHandler kicks off the handshake: it registers a fresh state
// parameter and redirects the browser to the provider's consent screen. No
// local session exists yet.
func (s *Server) GitHubLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loginURL, err := s.auth.LoginURL()
		if err != nil {
			log.Error().Err(err).Msg("failed to start login")
			writeJSONError(w, msgServerError, http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, loginURL, http.StatusFound)
	}
}

// OAuthCallbackHandler completes the handshake. Success and failure redirect
// to the same client home location; the outcome is observable only by
// re-querying identity afterwards.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		homeURL := s.config.GetClientHomeURL()

		state := r.FormValue("state")
		code := r.FormValue("code")
		if errorParam := r.FormValue("error"); errorParam != "" || code == "" || state == "" {
			log.Warn().Str("error", r.FormValue("error")).Msg("authorization callback denied")
			http.Redirect(w, r, homeURL, http.StatusFound)
			return
		}

		p, err := s.auth.Complete(r.Context(), state, code)
		if err != nil {
			log.Error().Err(err).Msg("handshake completion failed")
			http.Redirect(w, r, homeURL, http.StatusFound)
			return
		}

		sessionID := uuid.NewString()
		csrfToken := auth.RandomToken(32)
		session := sessions.Session{
			Principal: p,
			CSRFToken: csrfToken,
			CreatedAt: time.Now().UTC(),
		}

		if err := s.sessions.Upsert(sessionID, session); err != nil {
			log.Error().Err(err).Msg("failed to commit session")
			http.Redirect(w, r, homeURL, http.StatusFound)
			return
		}

		signed, err := s.cookies.Sign(sessionID)
		if err != nil {
			log.Error().Err(err).Msg("failed to sign session cookie")
			http.Redirect(w, r, homeURL, http.StatusFound)
			return
		}

		s.setSessionCookie(w, signed)
		s.setCSRFCookie(w, csrfToken)
		http.Redirect(w, r, homeURL, http.StatusFound)
	}
}

// LogoutHandler terminates the session unconditionally and redirects to the
// service root. Calling it with no active session still redirects cleanly.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if sessionID, err := s.cookies.Verify(cookie.Value); err == nil {
				if err := s.sessions.Delete(sessionID); err != nil {
					log.Warn().Err(err).Msg("failed to delete session on logout")
				}
			}
		}

		s.clearSessionCookies(w)
		http.Redirect(w, r, RouteIndex, http.StatusFound)
	}
}
