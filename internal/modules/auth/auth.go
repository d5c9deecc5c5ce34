package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password; callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account is a login account. Category is the classification its sessions
// inherit and is what scopes decision visibility.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Category     string    `json:"category"`
}

// CredentialSource looks up login accounts. Implementations may be backed
// by a static seed list or a real identity provider.
type CredentialSource interface {
	Lookup(ctx context.Context, username string) (*Account, error)
}

// Service defines the interface for authentication-related business logic.
type Service interface {
	Login(ctx context.Context, username, password string) (string, *Account, error)
}
