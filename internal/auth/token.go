package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/taskhive/taskhive-backend/internal/domain"
)

// TokenTTL bounds a token's lifetime. There is no server-side revocation
// list; expiry is the only bound.
const TokenTTL = 24 * time.Hour

// tokenClaims is the internal claims type used for JWT signing and parsing.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenManager issues and verifies stateless HMAC-signed bearer tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Issue creates a signed token embedding userID, valid for TokenTTL.
func (m *TokenManager) Issue(userID uuid.UUID) (string, error) {
	now := m.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID: userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify validates signature and expiry and returns the embedded user id.
// Any malformed, tampered or expired token yields domain.ErrInvalidToken.
func (m *TokenManager) Verify(token string) (uuid.UUID, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}
