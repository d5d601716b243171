package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snsihub/showcase-portal-backend/errs"
	"github.com/snsihub/showcase-portal-backend/models"
)

// sessionClaims is the payload of a portal session token. The token only
// carries what role-scoped routing needs; it is not a hardened credential.
type sessionClaims struct {
	UserName string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func newTokenIssuer(secret string, ttl time.Duration) tokenIssuer {
	return tokenIssuer{secret: []byte(secret), ttl: ttl}
}

// mint signs a session token for the authenticated user.
func (t tokenIssuer) mint(auth models.AuthResult) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserName: auth.UserName,
		Role:     string(auth.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   auth.StaffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// parse verifies a session token and rebuilds the session it names.
func (t tokenIssuer) parse(raw string) (models.Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.NewUnauthorizedError("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Session{}, errs.NewUnauthorizedError("invalid session token")
	}

	role, ok := models.ParseRole(claims.Role)
	if !ok {
		return models.Session{}, errs.NewUnauthorizedError("invalid session token")
	}
	return models.Session{
		StaffID:  claims.Subject,
		UserName: claims.UserName,
		Role:     role,
	}, nil
}
