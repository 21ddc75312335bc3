package statestore

import "time"

// LoginState tracks one in-flight handshake between login kickoff and the
// provider's callback. An abandoned handshake simply expires here; no session
// is ever created for it.
type LoginState struct {
	CreatedAt time.Time
}

type Repo interface {
	Upsert(state string, loginState *LoginState) error
	Get(state string) (*LoginState, error)

	// Consume retrieves and deletes a login state in one step, so a state
	// can be redeemed at most once even under concurrent callbacks
	Consume(state string) (*LoginState, error)

	Delete(state string) error
}
