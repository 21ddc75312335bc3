package server

import (
	"context"
	"crypto/subtle"
	"net/http"

	"github.com/bit-orbit/oauth/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the restored session for the current request
const ContextKeySession ContextKey = "session"

// RequireSessionAuth is the authorization gate. It restores the session named
// by the signed cookie and injects it into the request context. Any step
// failing (no cookie, bad signature, no stored session) redirects the browser
// to the login-initiation route rather than answering 401/403 - the gate is
// built for browser navigation flows.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
				return
			}

			sessionID, err := s.cookies.Verify(cookie.Value)
			if err != nil {
				http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
				return
			}

			session, err := s.sessions.Get(sessionID)
			if err != nil {
				http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireCSRF enforces the double-submit anti-forgery check on state-mutating
// routes. Must be chained after RequireSessionAuth.
func (s *Server) RequireCSRF() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, ok := sessionFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
				return
			}

			token := r.Header.Get(csrfHeaderName)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(session.CSRFToken)) != 1 {
				writeJSONError(w, msgInvalidRequest, http.StatusForbidden)
				return
			}

			next(w, r)
		}
	}
}

func sessionFromContext(ctx context.Context) (sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessions.Session)
	return session, ok
}
