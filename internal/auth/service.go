package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/velvet-portal/velvet-portal/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	dir Directory
}

// NewService constructs a new Service.
func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

// Authenticate validates email/password credentials. Unknown email and wrong
// password produce the same error so callers cannot probe which accounts
// exist. A malformed stored hash also reads as a credential failure.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.dir.LookupByEmail(ctx, email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}
