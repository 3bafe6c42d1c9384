// Package auth issues and verifies the signed bearer credentials used
// by user and admin principals.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind discriminates the two principal types. A token carrying a user
// claim never authenticates as an admin and vice versa.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Principal identifies an authenticated caller.
type Principal struct {
	Kind Kind
	ID   string
}

var (
	// ErrExpired is returned for tokens past their expiry.
	ErrExpired = errors.New("token has expired")
	// ErrInvalid is returned for malformed or badly signed tokens.
	ErrInvalid = errors.New("invalid token")
	// ErrWrongKind is returned when a valid token carries the claim
	// for the other principal type.
	ErrWrongKind = errors.New("invalid token format")
)

// claims carries exactly one of the two principal id claims.
type claims struct {
	UserID  string `json:"userId,omitempty"`
	AdminID string `json:"adminId,omitempty"`
	jwt.RegisteredClaims
}

// NewToken signs a bearer token for the principal, valid for ttl.
func NewToken(secret string, p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	switch p.Kind {
	case KindUser:
		c.UserID = p.ID
	case KindAdmin:
		c.AdminID = p.ID
	default:
		return "", fmt.Errorf("unknown principal kind %q", p.Kind)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}

// VerifyToken parses and verifies a bearer token and returns the
// principal it encodes.
func VerifyToken(secret, token string) (Principal, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpired
		}
		return Principal{}, ErrInvalid
	}

	switch {
	case c.UserID != "":
		return Principal{Kind: KindUser, ID: c.UserID}, nil
	case c.AdminID != "":
		return Principal{Kind: KindAdmin, ID: c.AdminID}, nil
	}
	return Principal{}, ErrWrongKind
}
