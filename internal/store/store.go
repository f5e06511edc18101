package store

import (
	"errors"

	"github.com/isdelr/identity-be/internal/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Insert when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserStore is the persistence capability required by the authentication
// service. Implementations must make Insert's uniqueness check atomic and
// must never hand out references into their own records.
type UserStore interface {
	FindByEmail(email string) (models.User, error)
	FindByID(id int64) (models.User, error)
	Insert(name, email, passwordHash string) (models.User, error)
	UpdateStatus(id int64, status models.Status) (models.User, error)
}
