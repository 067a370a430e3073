package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the cookie payload: a reference to the Redis record plus the
// usual registered claims.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), now: time.Now}
}

func (c *TokenCodec) Issue(s *Session) (string, error) {
	claims := Claims{
		SessionID: s.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies signature and expiry.
func (c *TokenCodec) Parse(raw string) (*Claims, error) {
	return c.parse(raw, jwt.WithTimeFunc(c.now))
}

// SessionID verifies only the signature, so an expired cookie can still be
// used to remove its record.
func (c *TokenCodec) SessionID(raw string) (string, error) {
	claims, err := c.parse(raw, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}
	return claims.SessionID, nil
}

func (c *TokenCodec) parse(raw string, opts ...jwt.ParserOption) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
