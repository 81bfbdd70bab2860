package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"

	"github.com/velvet-portal/velvet-portal/internal/shared"
)

// Directory resolves an email address to a user record. The static table
// below satisfies it today; a real identity store can replace it without
// touching the token service or the guard.
type Directory interface {
	LookupByEmail(ctx context.Context, email string) (*User, error)
}

// Seed is one configured account: a plaintext password that gets hashed at
// startup, never stored.
type Seed struct {
	Email    string
	Password string
	Name     string
}

// DefaultSeeds returns the portal's fixed account set.
func DefaultSeeds() []Seed {
	return []Seed{
		{Email: "poc@velvet.fr", Password: "Velvet#POC2026!", Name: "Utilisateur POC"},
		{Email: "sylvain.geron@velvet.fr", Password: "Velvet#POC2026!", Name: "Sylvain Geron"},
	}
}

// NormalizeEmail folds an email address to its canonical lookup key.
// A fresh Caser per call: Casers are stateful and not safe to share.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

// StaticDirectory is an in-memory Directory keyed by normalized email.
type StaticDirectory struct {
	users map[string]*User
}

// NewStaticDirectory hashes each seed password and builds the lookup table.
// Hashing uses a randomized salt, so the stored hashes differ between
// process starts; they are only ever compared through bcrypt.
func NewStaticDirectory(seeds []Seed) (*StaticDirectory, error) {
	users := make(map[string]*User, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		key := NormalizeEmail(seed.Email)
		users[key] = &User{
			EmailKey:     key,
			PasswordHash: string(hash),
			DisplayName:  seed.Name,
		}
	}
	return &StaticDirectory{users: users}, nil
}

// LookupByEmail fetches a user by email, normalizing before lookup.
func (d *StaticDirectory) LookupByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := d.users[NormalizeEmail(email)]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return user, nil
}

var _ Directory = (*StaticDirectory)(nil)
