package user

import (
	"context"
	"io"
)

type UserService interface {
	GetProfile(ctx context.Context, actor Principal, userID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, actor Principal, req UpdateProfileRequest) (ProfileResponse, error)
	UploadPhoto(ctx context.Context, actor Principal, file io.Reader, filename string) (ProfileResponse, error)
	ListEmployees(ctx context.Context, actor Principal) ([]ProfileResponse, error)
}
