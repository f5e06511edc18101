package services

import (
	"errors"
	"fmt"

	"github.com/isdelr/identity-be/internal/auth"
	"github.com/isdelr/identity-be/internal/models"
	"github.com/isdelr/identity-be/internal/store"
)

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(name, email, password string) (models.User, error)
	Login(email, password string) (string, error)
	WhoAmI(token string) (models.User, error)
	ChangeStatus(id int64, status string) (models.User, error)
}

// AuthService provides business logic for registration, login, identity
// resolution and account status changes.
type AuthService struct {
	store  store.UserStore
	hasher *auth.Hasher
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userStore store.UserStore, hasher *auth.Hasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{store: userStore, hasher: hasher, tokens: tokens}
}

// Register creates a new active user, hashing their password. The store's
// insert is the authoritative uniqueness guard, so a concurrent registration
// with the same email cannot slip past the pre-check.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	if _, err := s.store.FindByEmail(email); err == nil {
		return models.User{}, ErrAlreadyRegistered
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.Insert(name, email, passwordHash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.User{}, ErrAlreadyRegistered
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials and issues a bearer token. Check order is
// observable through the distinct failure kinds: existence, then status,
// then credential match.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.store.FindByEmail(email)
	if err != nil {
		return "", ErrUserNotFound
	}

	if user.Status != models.StatusActive {
		return "", ErrAccountNotActive
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// WhoAmI resolves a bearer token to the user it asserts.
func (s *AuthService) WhoAmI(token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrMissingToken
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	user, err := s.store.FindByID(claims.UserID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangeStatus assigns a new account status. The target must belong to the
// closed status set; the record is left unchanged otherwise.
func (s *AuthService) ChangeStatus(id int64, status string) (models.User, error) {
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return models.User{}, ErrInvalidStatus
	}

	user, err := s.store.UpdateStatus(id, parsed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}
