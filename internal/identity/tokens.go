package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ridebite/backend/internal/models"
	"github.com/ridebite/backend/internal/session"
)

var ErrTokenInvalid = errors.New("invalid or revoked token")

// TokenService issues and checks HS256 access tokens for the HTTP surface.
// Every issued token is recorded by jti so sign-out can revoke it.
type TokenService struct {
	store  Store
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenService(store Store, secret string, expiry time.Duration) *TokenService {
	return &TokenService{store: store, secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (s *TokenService) Issue(ctx context.Context, user *session.User) (string, error) {
	accountID, err := uuid.Parse(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: bad user id: %w", err)
	}

	jti := uuid.New()
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"jti":   jti.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	record := &models.SessionToken{ID: jti, AccountID: accountID, ExpiresAt: now.Add(s.expiry)}
	if err := s.store.SaveToken(ctx, record); err != nil {
		return "", err
	}
	return signed, nil
}

// Active reports whether the token behind the given claims has not been
// revoked.
func (s *TokenService) Active(ctx context.Context, claims jwt.MapClaims) bool {
	raw, _ := claims["jti"].(string)
	jti, err := uuid.Parse(raw)
	if err != nil {
		return false
	}
	active, err := s.store.TokenActive(ctx, jti)
	if err != nil {
		return false
	}
	return active
}

// Parse verifies a raw bearer token and returns the identity it carries.
// Used where authentication is optional and no middleware has run.
func (s *TokenService) Parse(ctx context.Context, raw string) (session.Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return session.Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !s.Active(ctx, claims) {
		return session.Identity{}, ErrTokenInvalid
	}
	return IdentityFromClaims(claims)
}

// IdentityFromClaims rebuilds the provider identity from verified claims.
func IdentityFromClaims(claims jwt.MapClaims) (session.Identity, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return session.Identity{}, errors.New("missing sub claim")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return session.Identity{ID: sub, Email: email, Name: name}, nil
}
