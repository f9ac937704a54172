package userRepo

import (
	"errors"

	"quickcowork/models"
)

// ErrDuplicateEmail signals that an account with the email already exists.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines methods for user data access. Two implementations
// exist: an in-memory mock store and a MongoDB-backed store for the hosted
// deployment variant.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
