package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwtService  jwt.Service
	userService user.UserService
	now         func() time.Time
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, userService user.UserService) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepo,
		jwtService:     jwtService,
		userService:    userService,
		now:            time.Now,
	}
}

// Login implements auth.AuthService. Unknown e-mail and wrong password fail
// the same way.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.UserRepository.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		logger.From(ctx).Info("login failed", "user_id", u.ID, "reason", "password")
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if u.Role != user.Role(req.Role) {
		logger.From(ctx).Info("login failed", "user_id", u.ID, "reason", "role")
		return auth.TokenResponse{}, auth.ErrRoleMismatch
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	profile, err := s.userService.GetProfile(ctx, user.Principal{UserID: u.ID, Role: u.Role}, u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	logger.From(ctx).Info("login succeeded", "user_id", u.ID, "role", u.Role)
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt - s.now().Unix(),
		User:                 profile,
	}, nil
}
