package sessions

import (
	"time"

	"github.com/bit-orbit/oauth/principal"
)

// Session is the record held by the Session Store for one browser session.
// It holds the Principal committed at callback completion plus the anti-forgery
// token issued alongside it.
type Session struct {
	Principal principal.Principal `json:"principal"`
	CSRFToken string              `json:"csrfToken"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Repo defines the Session Store: a durable mapping from an opaque session
// identifier to a Session. Consulted on every gated request, written on login,
// invalidated on logout.
type Repo interface {
	// Upsert creates or updates a session
	Upsert(sessionID string, session Session) error

	// Get retrieves a session by ID
	Get(sessionID string) (Session, error)

	// Delete removes a session; deleting an absent session is not an error
	Delete(sessionID string) error
}
