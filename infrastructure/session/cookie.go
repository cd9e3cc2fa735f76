package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// CookieName is the cookie carrying the signed session id.
const CookieName = "saved_hub_session"

type sessionClaims struct {
	SID string `json:"sid"`
	jwt.StandardClaims
}

// CookieCodec signs session ids into HS256 JWTs so the cookie is tamper
// evident. Only the id crosses the wire; state stays server side.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewCookieCodec(secret string, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl}
}

// TTL is the cookie lifetime, matching the store TTL.
func (c *CookieCodec) TTL() time.Duration { return c.ttl }

// Encode signs the session id.
func (c *CookieCodec) Encode(sid string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SID: sid,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(c.ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies the signature and returns the session id.
func (c *CookieCodec) Decode(value string) (string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.SID == "" {
		return "", fmt.Errorf("invalid session cookie")
	}
	return claims.SID, nil
}
