package sessions

import (
	"fmt"
	"time"

	errs "github.com/bit-orbit/oauth/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// CookieCodec signs and verifies the session identifier carried by the session
// cookie, so a forged or tampered cookie never reaches the Session Store. The
// cookie value is a compact HS256 token over the session ID, signed with the
// session secret.
type CookieCodec struct {
	secret []byte
}

// NewCookieCodec creates a codec for the given session-signing secret.
func NewCookieCodec(secret string) (*CookieCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("[sessions NewCookieCodec] session secret is required")
	}
	return &CookieCodec{secret: []byte(secret)}, nil
}

// Sign wraps a session ID into a signed cookie value.
func (c *CookieCodec) Sign(sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("[sessions Sign] sign session id: %w", err)
	}
	return signed, nil
}

// Verify checks a cookie value's signature and returns the session ID it
// carries.
func (c *CookieCodec) Verify(value string) (string, error) {
	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.Wrapf(errs.ErrInvalidCookie, "[sessions Verify] parse cookie")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errs.ErrInvalidCookie
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errs.ErrInvalidCookie
	}
	return sid, nil
}
