package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bit-orbit/oauth/clients"
	"github.com/rs/zerolog/log"
)

// chapterLabel tags every forwarded submission in the remote tracker
const chapterLabel = "chapter"

type chapterRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ChapterHandler validates the submitted chapter and forwards it as an issue
// to the configured repository, authenticated with the submitting user's own
// access token. The handler waits for the remote call to settle: the caller
// learns about delivery failure through the response status. No idempotency
// key exists, so a client-side retry creates a duplicate remote issue.
func (s *Server) ChapterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, RouteAuthGitHub, http.StatusFound)
			return
		}

		var req chapterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, msgEmptyChapter, http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
			writeJSONError(w, msgEmptyChapter, http.StatusBadRequest)
			return
		}

		issue := clients.Issue{
			Title:  req.Title,
			Body:   req.Body,
			Labels: []string{chapterLabel},
		}

		err := s.github.CreateIssue(r.Context(), session.Principal.AccessToken, s.config.GetRepoOwner(), s.config.GetRepoName(), issue)
		if err != nil {
			log.Error().Err(err).Str("user", session.Principal.Username).Msg("chapter submission failed")
			writeJSONError(w, msgChapterFailed, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
