package user

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hris/hrms-backend-go/internal/service/file"
)

type UserServiceImpl struct {
	user.UserRepository
	fileService file.FileService
}

func NewUserService(repo user.UserRepository, fileService file.FileService) user.UserService {
	return &UserServiceImpl{UserRepository: repo, fileService: fileService}
}

func (s *UserServiceImpl) toResponse(u user.User) user.ProfileResponse {
	var photoURL *string
	if u.Photo != nil && *u.Photo != "" {
		url := s.fileService.GetFileURL(*u.Photo)
		photoURL = &url
	}
	return user.ToProfileResponse(u, photoURL)
}

func (s *UserServiceImpl) get(ctx context.Context, id string) (user.User, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetProfile implements user.UserService. An empty userID means the caller.
func (s *UserServiceImpl) GetProfile(ctx context.Context, actor user.Principal, userID string) (user.ProfileResponse, error) {
	if userID == "" {
		userID = actor.UserID
	}
	if !actor.CanAccessEmployee(userID, user.PermissionEmployeeViewAll) {
		return user.ProfileResponse{}, user.ErrInsufficientPermissions
	}

	u, err := s.get(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return s.toResponse(u), nil
}

// UpdateProfile implements user.UserService. Only the caller's own profile
// is ever edited.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actor user.Principal, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if !actor.Can(user.PermissionEditOwnProfile) {
		return user.ProfileResponse{}, user.ErrProfileOwnerRequired
	}
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	updated, err := s.UserRepository.UpdateProfile(ctx, actor.UserID, req)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, user.ErrUserNotFound
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}

	logger.From(ctx).Info("profile updated", "user_id", actor.UserID)
	return s.toResponse(updated), nil
}

// UploadPhoto implements user.UserService.
func (s *UserServiceImpl) UploadPhoto(ctx context.Context, actor user.Principal, file io.Reader, filename string) (user.ProfileResponse, error) {
	if !actor.Can(user.PermissionEditOwnProfile) {
		return user.ProfileResponse{}, user.ErrProfileOwnerRequired
	}

	current, err := s.get(ctx, actor.UserID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	key, err := s.fileService.UploadProfilePhoto(ctx, actor.UserID, file, filename)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if err := s.UserRepository.UpdatePhoto(ctx, actor.UserID, key); err != nil {
		if delErr := s.fileService.DeleteFile(ctx, key); delErr != nil {
			logger.From(ctx).Warn("failed to remove orphaned photo", "path", key, "error", delErr)
		}
		return user.ProfileResponse{}, fmt.Errorf("failed to update photo: %w", err)
	}

	if current.Photo != nil && *current.Photo != "" {
		if err := s.fileService.DeleteFile(ctx, *current.Photo); err != nil {
			logger.From(ctx).Warn("failed to remove previous photo", "path", *current.Photo, "error", err)
		}
	}

	current.Photo = &key
	logger.From(ctx).Info("profile photo updated", "user_id", actor.UserID, "path", key)
	return s.toResponse(current), nil
}

// ListEmployees implements user.UserService.
func (s *UserServiceImpl) ListEmployees(ctx context.Context, actor user.Principal) ([]user.ProfileResponse, error) {
	if !actor.Can(user.PermissionEmployeeViewAll) {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := make([]user.ProfileResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, s.toResponse(u))
	}
	return resp, nil
}
