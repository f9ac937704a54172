package user

import (
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"quickcowork/utils"
)

// SignIn authenticates an account. Failures map to the fixed AuthError
// taxonomy so the client can show a specific message per case.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrMalformedEmail
	}

	if !s.allowAttempt(email) {
		return nil, ErrRateLimited
	}

	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongCredential
	}

	token, err := utils.GenerateToken(rec.ID, rec.Email, string(rec.Role), utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
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
