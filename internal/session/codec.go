// Package session turns the persisted bearer token into display-level
// identity and keeps that token on disk between runs.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spf13/cast"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

var ErrMalformedToken = errors.New("malformed session token")

// Decode extracts a Session from a bearer token without verifying the
// signature or expiry. The backend is the sole authority on validity; the
// decoded fields are display convenience only.
func Decode(token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	sess := &domain.Session{
		UserID:   firstClaim(claims, "id", "sub"),
		Name:     cast.ToString(claims["name"]),
		Email:    firstClaim(claims, "email", "sub"),
		PhotoURL: cast.ToString(claims["photo"]),
		Role:     normalizeRole(cast.ToString(claims["role"])),
		Token:    token,
	}
	if sess.UserID == "" {
		return nil, fmt.Errorf("%w: no subject claim", ErrMalformedToken)
	}
	if sess.PhotoURL == "" {
		sess.PhotoURL = domain.DefaultUserPhoto
	}
	return sess, nil
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v := cast.ToString(claims[k]); v != "" {
			return v
		}
	}
	return ""
}

// normalizeRole settles the role casing once, at the decode boundary. The
// backend has issued both "admin" and "ADMIN" across revisions; lower case
// is canonical everywhere past this point.
func normalizeRole(role string) domain.Role {
	if strings.EqualFold(role, string(domain.RoleAdmin)) {
		return domain.RoleAdmin
	}
	return domain.RoleUser
}
