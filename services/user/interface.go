package user

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	userRepo "quickcowork/database/repository/user"
	"quickcowork/models"
)

// UserService owns accounts, credentials and sessions.
type UserService interface {
	SignUp(email, password string, role models.Role, name string) (*AuthResponse, error)
	SignIn(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
	Delete(id string) error
}

// AuthResponse contains the user's profile and a signed session token.
type AuthResponse struct {
	ID     string      `json:"id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	Name   string      `json:"name"`
	Avatar string      `json:"avatar"`
	Token  string      `json:"token"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository

	// Per-email sign-in throttle backing the rate-limited auth error.
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (s *DefaultUserService) allowAttempt(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.limiters == nil {
		s.limiters = make(map[string]*rate.Limiter)
	}
	limiter, ok := s.limiters[email]
	if !ok {
		// 5 attempts, refilling one every 30 seconds.
		limiter = rate.NewLimiter(rate.Every(30*time.Second), 5)
		s.limiters[email] = limiter
	}
	return limiter.Allow()
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// Delete removes an account. Deleting an unknown id is ErrUserNotFound so
// the admin panel can tell a stale row from a successful removal.
func (s *DefaultUserService) Delete(id string) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	return s.Repo.Delete(id)
}
