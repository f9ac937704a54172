package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "quickcowork/database/repository/user"
	"quickcowork/models"
	"quickcowork/utils"
)

// SignUp creates an account and returns the profile with a session token.
// An unknown role defaults to renter.
func (s *DefaultUserService) SignUp(email, password string, role models.Role, name string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrMalformedEmail
	}
	if !models.ValidRole(role) {
		role = models.RoleRenter
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("SignUp: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	rec := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Role:         role,
		Name:         name,
		Avatar:       fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", email),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(rec); err != nil {
		if err == userRepo.ErrDuplicateEmail {
			return nil, ErrEmailTaken
		}
		utils.GetLogger().Error("SignUp: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, string(rec.Role), utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:     rec.ID,
		Email:  rec.Email,
		Role:   rec.Role,
		Name:   rec.Name,
		Avatar: rec.Avatar,
		Token:  token,
	}, nil
}
