package server

import "net/http"

type meUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type meResponse struct {
	User meUser `json:"user"`
}

// MeHandler returns the non-sensitive subset of the restored Principal. The
// access and refresh tokens never leave the server.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
			return
		}

		writeJSON(w, http.StatusOK, meResponse{
			User: meUser{
				ID:       session.Principal.ID,
				Username: session.Principal.Username,
			},
		})
	}
}
