package server

import "net/http"

const (
	// sessionCookieName carries the signed session identifier
	sessionCookieName = "session_id"
	// csrfCookieName mirrors the anti-forgery token so the client can echo it
	// back in the request header
	csrfCookieName = "csrf_token"
	// csrfHeaderName is the request header checked on state-mutating routes
	csrfHeaderName = "X-CSRF-Token"
)

func (s *Server) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) setCSRFCookie(w http.ResponseWriter, value string) {
	// Readable by the client application, never by this server's handlers
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: false,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{sessionCookieName, csrfCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: name == sessionCookieName,
			Secure:   s.config.IsProduction(),
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}
