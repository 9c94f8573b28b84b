package user

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/fixtures"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/memory"
	"github.com/dayflow-hris/hrms-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dhruv = user.Principal{UserID: "1", Role: user.RoleEmployee}
	hr    = user.Principal{UserID: "3", Role: user.RoleAdmin}
)

func newService(t *testing.T) (user.UserService, *storage.LocalStorage) {
	t.Helper()
	repo := memory.NewUserRepository()
	for _, u := range fixtures.Users("") {
		_, err := repo.Create(context.Background(), u)
		require.NoError(t, err)
	}
	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return NewUserService(repo, file.NewFileService(store)), store
}

func TestGetProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	own, err := svc.GetProfile(ctx, dhruv, "")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", own.EmployeeID)
	assert.Equal(t, "2022-01-15", own.JoinDate)
	assert.Nil(t, own.PhotoURL)

	_, err = svc.GetProfile(ctx, dhruv, "2")
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	other, err := svc.GetProfile(ctx, hr, "2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", other.Name)

	_, err = svc.GetProfile(ctx, hr, "42")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	phone := "+44 (20) 7946-0958"
	updated, err := svc.UpdateProfile(ctx, dhruv, user.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "DHRUV", updated.Name)

	bad := "call me"
	_, err = svc.UpdateProfile(ctx, dhruv, user.UpdateProfileRequest{Phone: &bad})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "phone")
}

func TestUploadPhoto_ReplacesPrevious(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	encode := func() *bytes.Buffer {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 20))))
		return &buf
	}

	first, err := svc.UploadPhoto(ctx, dhruv, encode(), "a.png")
	require.NoError(t, err)
	require.NotNil(t, first.PhotoURL)

	second, err := svc.UploadPhoto(ctx, dhruv, encode(), "b.png")
	require.NoError(t, err)
	require.NotNil(t, second.PhotoURL)
	assert.NotEqual(t, *first.PhotoURL, *second.PhotoURL)

	oldKey := (*first.PhotoURL)[len("http://localhost:8080/uploads/"):]
	_, err = store.Open(ctx, oldKey)
	assert.ErrorIs(t, err, storage.ErrFileNotFound)

	_, err = svc.UploadPhoto(ctx, dhruv, encode(), "c.gif")
	assert.ErrorIs(t, err, user.ErrInvalidPhotoType)
}

func TestListEmployees_AdminOnly(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.ListEmployees(ctx, dhruv)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	all, err := svc.ListEmployees(ctx, hr)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "1", all[0].ID)
}
