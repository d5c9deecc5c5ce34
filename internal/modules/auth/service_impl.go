package auth

import (
	"context"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SeedAccount is a plaintext credential used to build a memory source.
type SeedAccount struct {
	Username string
	Password string
	Category string
}

type memorySource struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewMemorySource builds a CredentialSource from seed credentials, hashing
// each password with bcrypt.
func NewMemorySource(seeds []SeedAccount) (CredentialSource, error) {
	accounts := make(map[string]*Account, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		accounts[seed.Username] = &Account{
			ID:           uuid.New(),
			Username:     seed.Username,
			PasswordHash: string(hash),
			Category:     seed.Category,
		}
	}
	return &memorySource{accounts: accounts}, nil
}

func (s *memorySource) Lookup(ctx context.Context, username string) (*Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acct, ok := s.accounts[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

type service struct {
	source CredentialSource
	jwtKey []byte
}

// NewService creates a new auth service signing tokens with jwtKey.
func NewService(source CredentialSource, jwtKey []byte) Service {
	return &service{source: source, jwtKey: jwtKey}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *Account, error) {
	acct, err := s.source.Lookup(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &sessionClaims{
		Category: acct.Category,
		StandardClaims: jwt.StandardClaims{
			Subject:   acct.Username,
			ExpiresAt: expirationTime.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", nil, err
	}

	return tokenString, acct, nil
}
