// Package token signs and verifies the bearer tokens handed out at login.
package token

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
)

// TTL is the lifetime of an issued token.
const TTL = 7 * 24 * time.Hour

var (
	ErrMissingSecret = errors.New("missing_jwt_secret")
	ErrInvalidToken  = errors.New("invalid_token")
)

type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	return &Signer{secret: []byte(secret)}, nil
}

type claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

func (s *Signer) Sign(userID snowflake.ID, now time.Time) (string, error) {
	c := claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *Signer) Verify(raw string) (snowflake.ID, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	id, err := snowflake.ParseString(c.UserID)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}
