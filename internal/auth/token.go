package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the identity facts embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenStatus tags the outcome of verifying a session token.
type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenExpired
	TokenInvalid
)

// VerifyResult carries the verification outcome. Claims are set only when
// Status is TokenValid.
type VerifyResult struct {
	Status TokenStatus
	Claims *Claims
}

// Tokens issues and verifies HS256-signed session tokens. The signing secret
// and lifetime are fixed at construction.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens constructs a token service.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's identity with an absolute expiry
// of now + ttl.
func (t *Tokens) Issue(user *User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.EmailKey,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email: user.EmailKey,
		Name:  user.DisplayName,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature integrity first, then expiry. Expired and invalid
// are distinct outcomes here; callers decide how much of that to expose.
func (t *Tokens) Verify(raw string) VerifyResult {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, t.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return VerifyResult{Status: TokenExpired}
		}
		return VerifyResult{Status: TokenInvalid}
	}
	if !token.Valid {
		return VerifyResult{Status: TokenInvalid}
	}
	return VerifyResult{Status: TokenValid, Claims: claims}
}

func (t *Tokens) keyFunc(token *jwt.Token) (any, error) {
	return t.secret, nil
}
