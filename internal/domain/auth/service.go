package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"smartinventory/internal/core/apperror"
	"smartinventory/internal/core/id"
	"smartinventory/pkg/logger"
)

// Service provides login against an in-memory user directory.
// There is no durable user storage; the directory is seeded at startup.
type Service struct {
	mu         sync.RWMutex
	byEmail    map[string]*User
	jwtService *JWTService
}

// NewService creates a new auth service.
func NewService(jwtService *JWTService) *Service {
	return &Service{
		byEmail:    make(map[string]*User),
		jwtService: jwtService,
	}
}

// SeedUser registers a user with the given plaintext password.
// Used at startup only; passwords are stored as bcrypt hashes.
func (s *Service) SeedUser(email, password, name, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byEmail[normalizeEmail(email)] = &User{
		ID:           id.New().String(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	return nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, *User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, nil, apperror.NewValidation("email and password are required")
	}

	s.mu.RLock()
	user, ok := s.byEmail[normalizeEmail(creds.Email)]
	s.mu.RUnlock()

	if !ok {
		// Same error as a bad password so callers cannot probe for accounts.
		return nil, nil, apperror.NewUnauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)); err != nil {
		logger.Warn(ctx, "failed login attempt", "email", creds.Email)
		return nil, nil, apperror.NewUnauthorized("invalid email or password")
	}

	token, expiresAt, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info(ctx, "user logged in", "email", user.Email, "role", user.Role)

	return &Session{Token: token, ExpiresAt: expiresAt}, user, nil
}

// UserByEmail returns a registered user.
func (s *Service) UserByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	copied := *user
	return &copied, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
