package principal

// Profile is the subset of the identity provider's user record this backend
// cares about.
type Profile struct {
	ID          string
	Username    string
	DisplayName string
}

// Principal is the authenticated identity held server-side in the session:
// the user's provider identity plus the delegated credential obtained during
// the OAuth handshake. AccessToken and RefreshToken are sensitive and must
// never be written to a response body.
type Principal struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name,omitempty"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Serialize projects the provider's profile and token pair into the compact
// Principal shape stored in the session. It performs no validation; absent
// optional fields pass through as-is and downstream consumers must tolerate
// them.
func Serialize(profile Profile, accessToken, refreshToken string) Principal {
	return Principal{
		ID:           profile.ID,
		Username:     profile.Username,
		Name:         profile.DisplayName,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

// Deserialize restores a Principal from its stored form. The stored shape
// already is the Principal shape, so this is the identity transform.
func Deserialize(p Principal) Principal {
	return p
}
