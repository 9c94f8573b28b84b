package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoding
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxPhotoSide bounds the longest edge of a stored profile photo.
const MaxPhotoSide = 512

var allowedPhotoExts = []string{".jpg", ".jpeg", ".png"}

type FileService interface {
	// UploadProfilePhoto stores a resized JPEG and returns its storage key.
	UploadProfilePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(path string) string
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: storage}
}

// UploadProfilePhoto implements FileService.
func (s *fileServiceImpl) UploadProfilePhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !validator.IsInSlice(ext, allowedPhotoExts) {
		return "", user.ErrInvalidPhotoType
	}

	src, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", user.ErrInvalidPhotoType, err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fitWithin(src, MaxPhotoSide), &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode photo: %w", err)
	}

	key := path.Join("photos", employeeID, fmt.Sprintf("%s-%s.jpg", employeeID, uuid.New().String()))
	uploaded, err := s.storage.Upload(ctx, &buf, key)
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return uploaded, nil
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(path string) string {
	return s.storage.URL(path)
}

// fitWithin scales img down so neither side exceeds max, keeping the aspect
// ratio. Smaller images are returned as is.
func fitWithin(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	nw, nh := max, max
	if w > h {
		nh = h * max / w
	} else {
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
